package schema

import (
	"fmt"
	"strings"
)

// Issue codes emitted by the structural walker. The names double as the
// machine-readable detail kinds carried on the wire, so they are stable.
const (
	CodeExtraForbidden   = "extra_forbidden"
	CodeMissing          = "missing"
	CodeStringType       = "string_type"
	CodeIntType          = "int_type"
	CodeIntParsing       = "int_parsing"
	CodeIntFromFloat     = "int_from_float"
	CodeFloatType        = "float_type"
	CodeFloatParsing     = "float_parsing"
	CodeBoolType         = "bool_type"
	CodeBoolParsing      = "bool_parsing"
	CodeListType         = "list_type"
	CodeDictType         = "dict_type"
	CodeModelType        = "model_type"
	CodeUnionTagInvalid  = "union_tag_invalid"
	CodeUnionTagNotFound = "union_tag_not_found"
)

// Issue is a single structural violation. Loc holds the path from the root:
// string segments for object members, int segments for list indexes. Column
// kind tags appear as ordinary string segments; rendering layers decide how
// to display them.
type Issue struct {
	Code    string
	Loc     []any
	Message string
	// Params carries structured context (discriminator name, expected tags)
	// for codes that need it.
	Params map[string]string
}

// Issues is an ordered collection of violations that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %v", iss[i].Code, iss[i].Loc)
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func appendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// messageFor yields the raw, unlocated message for an issue code. These are
// the messages passed through to programmatic consumers verbatim.
func messageFor(code string) string {
	switch code {
	case CodeExtraForbidden:
		return "extra inputs are not permitted"
	case CodeMissing:
		return "field required"
	case CodeStringType:
		return "input should be a valid string"
	case CodeIntType:
		return "input should be a valid integer"
	case CodeIntParsing:
		return "input should be a valid integer, unable to parse string as an integer"
	case CodeIntFromFloat:
		return "input should be a valid integer, got a number with a fractional part"
	case CodeFloatType:
		return "input should be a valid number"
	case CodeFloatParsing:
		return "input should be a valid number, unable to parse string as a number"
	case CodeBoolType:
		return "input should be a valid boolean"
	case CodeBoolParsing:
		return "input should be a valid boolean, unable to interpret input"
	case CodeListType:
		return "input should be a valid list"
	case CodeDictType:
		return "input should be a valid dictionary"
	case CodeModelType:
		return "input should be a valid object"
	case CodeUnionTagNotFound:
		return "unable to extract tag using discriminator 'type'"
	}
	return code
}
