package schemax

import (
	"fmt"
	"strings"

	"github.com/schemax/schemax/schema"
)

// SchemaRule validates a parsed tree against the run's dataset-schema model.
// It is pure: no state, no knowledge of file paths beyond the source id it
// echoes back.
type SchemaRule struct {
	model *schema.Model
}

// NewSchemaRule wraps a built model as a pipeline rule.
func NewSchemaRule(m *schema.Model) *SchemaRule {
	return &SchemaRule{model: m}
}

func (r *SchemaRule) Name() string { return RuleSchema }

func (r *SchemaRule) Validate(data any, sourceID string) Outcome {
	iss := r.model.Validate(data)
	if len(iss) == 0 {
		return OK(sourceID)
	}
	errs := make([]ValidationError, 0, len(iss))
	for _, is := range iss {
		errs = append(errs, ValidationError{
			Kind:    KindValidationError,
			ErrorAt: renderLocation(is),
			Message: renderMessage(is),
			Detail:  &ErrorDetail{Kind: is.Code, Message: is.Message},
		})
	}
	return Fail(sourceID, errs...)
}

// renderLocation produces the JSONPath-like error_at string. Column kind
// tags are structural discriminators, not user-visible nesting, so string
// segments naming a kind are dropped. An invalid-discriminator issue appends
// the discriminator field name as the final segment.
func renderLocation(is schema.Issue) string {
	b := strings.Builder{}
	b.WriteString("$")
	for _, seg := range is.Loc {
		switch s := seg.(type) {
		case int:
			fmt.Fprintf(&b, "[%d]", s)
		case string:
			if !schema.IsKind(s) {
				b.WriteString("." + s)
			}
		}
	}
	if is.Code == schema.CodeUnionTagInvalid {
		if d := is.Params["discriminator"]; d != "" {
			b.WriteString("." + d)
		}
	}
	return b.String()
}

// renderMessage synthesizes the human-readable message for an issue. Codes
// outside the synthesized categories pass their raw message through
// verbatim.
func renderMessage(is schema.Issue) string {
	loc := is.Loc
	if len(loc) == 0 {
		loc = []any{"$"}
	}
	last := fmt.Sprint(loc[len(loc)-1])

	switch is.Code {
	case schema.CodeExtraForbidden:
		if len(loc) > 1 {
			if kind, ok := loc[len(loc)-2].(string); ok && schema.IsKind(kind) {
				return fmt.Sprintf("'%s' invalid attribute for '%s' type", last, kind)
			}
		}
		if len(loc) == 1 {
			return fmt.Sprintf("invalid attribute '%s' provided", last)
		}
	case schema.CodeMissing:
		return fmt.Sprintf("'%s' attribute missing", last)
	case schema.CodeIntParsing, schema.CodeIntFromFloat, schema.CodeFloatParsing, schema.CodeBoolParsing:
		expected := is.Code[:strings.Index(is.Code, "_")]
		return fmt.Sprintf("'%s' expected to be '%s' type", last, expected)
	case schema.CodeIntType, schema.CodeFloatType, schema.CodeStringType, schema.CodeListType, schema.CodeModelType:
		expected := is.Code[:strings.Index(is.Code, "_")]
		if expected == "model" {
			expected = "object"
		}
		return fmt.Sprintf("'%s' expected to be '%s' type", last, expected)
	case schema.CodeUnionTagInvalid:
		if tags := is.Params["expected_tags"]; tags != "" {
			return fmt.Sprintf("'%s' expected to be one of [%s]", is.Params["discriminator"], tags)
		}
	case schema.CodeUnionTagNotFound:
		return fmt.Sprintf("'%s' attribute missing", schema.Discriminator)
	}
	return is.Message
}
