package schema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Validate walks v against the model and returns every violation in
// deterministic order: depth-first, declared fields in declaration order,
// list elements ascending. Unknown keys are reported after the declared
// fields of their object, in lexicographic order (decoded maps carry no
// input order). A nil return means v conforms.
func (m *Model) Validate(v any) Issues {
	obj, ok := v.(map[string]any)
	if !ok {
		return Issues{issueAt(CodeModelType, nil)}
	}
	return m.validateObject(obj, m.root, false, nil, nil)
}

func (m *Model) validateObject(obj map[string]any, fields []Field, isColumn bool, loc []any, iss Issues) Issues {
	known := make(map[string]struct{}, len(fields)+1)
	if isColumn {
		known[Discriminator] = struct{}{}
	}
	for _, f := range fields {
		known[f.Name] = struct{}{}
		val, present := obj[f.Name]
		if !present {
			if f.Required {
				iss = appendIssues(iss, issueAt(CodeMissing, child(loc, f.Name)))
			}
			continue
		}
		iss = m.validateValue(f, val, child(loc, f.Name), iss)
	}

	unknown := make([]string, 0, len(obj))
	for k := range obj {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		iss = appendIssues(iss, issueAt(CodeExtraForbidden, child(loc, k)))
	}
	return iss
}

func (m *Model) validateValue(f Field, v any, loc []any, iss Issues) Issues {
	if v == nil {
		if f.AllowNull {
			return iss
		}
		return appendIssues(iss, issueAt(nullCode(f.Type), loc))
	}
	switch f.Type {
	case StringValue:
		if _, ok := v.(string); !ok {
			iss = appendIssues(iss, issueAt(CodeStringType, loc))
		}
	case IntValue:
		if code := intCode(v); code != "" {
			iss = appendIssues(iss, issueAt(code, loc))
		}
	case FloatValue:
		if code := floatCode(v); code != "" {
			iss = appendIssues(iss, issueAt(code, loc))
		}
	case BoolValue:
		if code := boolCode(v); code != "" {
			iss = appendIssues(iss, issueAt(code, loc))
		}
	case StringListValue:
		items, ok := v.([]any)
		if !ok {
			return appendIssues(iss, issueAt(CodeListType, loc))
		}
		for i, item := range items {
			if _, ok := item.(string); !ok {
				iss = appendIssues(iss, issueAt(CodeStringType, child(loc, i)))
			}
		}
	case ObjectValue:
		if _, ok := v.(map[string]any); !ok {
			iss = appendIssues(iss, issueAt(CodeDictType, loc))
		}
	case ColumnListValue:
		items, ok := v.([]any)
		if !ok {
			return appendIssues(iss, issueAt(CodeListType, loc))
		}
		for i, item := range items {
			iss = m.validateColumn(item, child(loc, i), iss)
		}
	}
	return iss
}

// validateColumn dispatches one column object on the "type" discriminator,
// then walks the selected variant's fields. The matched kind is recorded as
// a path segment so downstream rendering can tell variant nesting apart.
func (m *Model) validateColumn(v any, loc []any, iss Issues) Issues {
	obj, ok := v.(map[string]any)
	if !ok {
		return appendIssues(iss, issueAt(CodeModelType, loc))
	}
	raw, present := obj[Discriminator]
	if !present {
		is := issueAt(CodeUnionTagNotFound, loc)
		is.Params = map[string]string{"discriminator": Discriminator}
		return appendIssues(iss, is)
	}
	tag, _ := raw.(string)
	if !IsKind(tag) {
		is := Issue{
			Code:    CodeUnionTagInvalid,
			Loc:     loc,
			Message: fmt.Sprintf("input tag %q found using %q does not match any of the expected tags: %s", tag, Discriminator, expectedTags()),
			Params: map[string]string{
				"discriminator": Discriminator,
				"expected_tags": expectedTags(),
			},
		}
		return appendIssues(iss, is)
	}
	return m.validateObject(obj, m.columns[Kind(tag)], true, child(loc, tag), iss)
}

func issueAt(code string, loc []any) Issue {
	return Issue{Code: code, Loc: loc, Message: messageFor(code)}
}

func child(loc []any, seg any) []any {
	out := make([]any, 0, len(loc)+1)
	out = append(out, loc...)
	return append(out, seg)
}

func expectedTags() string {
	parts := make([]string, 0, len(Kinds))
	for _, k := range Kinds {
		parts = append(parts, "'"+string(k)+"'")
	}
	return strings.Join(parts, ", ")
}

func nullCode(t ValueType) string {
	switch t {
	case StringValue:
		return CodeStringType
	case IntValue:
		return CodeIntType
	case FloatValue:
		return CodeFloatType
	case BoolValue:
		return CodeBoolType
	case StringListValue, ColumnListValue:
		return CodeListType
	case ObjectValue:
		return CodeDictType
	}
	return CodeModelType
}

// intCode checks lax integer acceptance: integers, integral floats, and
// strings parseable as base-10 integers. Returns the issue code, or "" when
// the value is acceptable.
func intCode(v any) string {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return ""
	case float64:
		if n == float64(int64(n)) {
			return ""
		}
		return CodeIntFromFloat
	case float32:
		if float64(n) == float64(int64(n)) {
			return ""
		}
		return CodeIntFromFloat
	case json.Number:
		if _, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
			return ""
		}
		if f, err := n.Float64(); err == nil {
			if f == float64(int64(f)) {
				return ""
			}
			return CodeIntFromFloat
		}
		return CodeIntType
	case string:
		if _, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return ""
		}
		return CodeIntParsing
	}
	return CodeIntType
}

func floatCode(v any) string {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return ""
	case json.Number:
		if _, err := n.Float64(); err == nil {
			return ""
		}
		return CodeFloatType
	case string:
		if _, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return ""
		}
		return CodeFloatParsing
	}
	return CodeFloatType
}

func boolCode(v any) string {
	switch b := v.(type) {
	case bool:
		return ""
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "false", "t", "f", "yes", "no", "y", "n", "on", "off", "1", "0":
			return ""
		}
		return CodeBoolParsing
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		if isZeroOrOne(fmt.Sprint(b)) {
			return ""
		}
		return CodeBoolParsing
	case float64:
		if b == 0 || b == 1 {
			return ""
		}
		return CodeBoolParsing
	case json.Number:
		if f, err := b.Float64(); err == nil && (f == 0 || f == 1) {
			return ""
		}
		return CodeBoolParsing
	}
	return CodeBoolType
}

func isZeroOrOne(s string) bool { return s == "0" || s == "1" }
