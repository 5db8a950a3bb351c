package schemax_test

import (
	"testing"

	schemax "github.com/schemax/schemax"
	"github.com/schemax/schemax/schema"
)

func newSchemaRule(ov schema.Overrides) *schemax.SchemaRule {
	return schemax.NewSchemaRule(schema.Build(ov))
}

func TestSchemaRule_MinimalRecordValid(t *testing.T) {
	r := newSchemaRule(schema.Overrides{})
	out := r.Validate(map[string]any{"name": "T", "fqn": "a.b", "columns": []any{}}, "x.json")
	if !out.Valid || out.ErrorCount != 0 || len(out.Errors) != 0 {
		t.Fatalf("expected valid outcome, got %+v", out)
	}
	if out.SourceID != "x.json" {
		t.Fatalf("source id not echoed: %+v", out)
	}
}

func TestSchemaRule_ExtraRootField(t *testing.T) {
	r := newSchemaRule(schema.Overrides{})
	out := r.Validate(map[string]any{"name": "T", "columns": []any{}, "extra": "x"}, "f")
	if out.Valid || out.ErrorCount != 1 {
		t.Fatalf("expected one error, got %+v", out)
	}
	e := out.Errors[0]
	if e.Kind != schemax.KindValidationError {
		t.Fatalf("unexpected kind %q", e.Kind)
	}
	if e.ErrorAt != "$.extra" {
		t.Fatalf("unexpected error_at %q", e.ErrorAt)
	}
	if e.Message != "invalid attribute 'extra' provided" {
		t.Fatalf("unexpected message %q", e.Message)
	}
	if e.Detail == nil || e.Detail.Kind != "extra_forbidden" {
		t.Fatalf("missing structural detail: %+v", e.Detail)
	}
}

func TestSchemaRule_ExtraColumnFieldHidesKindSegment(t *testing.T) {
	r := newSchemaRule(schema.Overrides{})
	for _, kind := range schema.Kinds {
		out := r.Validate(map[string]any{
			"name": "T", "fqn": "a.b",
			"columns": []any{map[string]any{"name": "c", "type": string(kind), "extra_field": "x"}},
		}, "f")
		if out.Valid || out.ErrorCount != 1 {
			t.Fatalf("kind %s: expected one error, got %+v", kind, out)
		}
		e := out.Errors[0]
		if e.ErrorAt != "$.columns[0].extra_field" {
			t.Fatalf("kind %s: unexpected error_at %q", kind, e.ErrorAt)
		}
		want := "'extra_field' invalid attribute for '" + string(kind) + "' type"
		if e.Message != want {
			t.Fatalf("kind %s: got message %q, want %q", kind, e.Message, want)
		}
	}
}

func TestSchemaRule_MissingPromotedFields(t *testing.T) {
	r := newSchemaRule(schema.Overrides{Root: []string{"fqn", "columns"}})
	out := r.Validate(map[string]any{"name": "T", "description": "d"}, "f")
	if out.Valid || out.ErrorCount != 2 {
		t.Fatalf("expected two errors, got %+v", out)
	}
	if out.Errors[0].ErrorAt != "$.fqn" || out.Errors[0].Message != "'fqn' attribute missing" {
		t.Fatalf("unexpected first error %+v", out.Errors[0])
	}
	if out.Errors[1].ErrorAt != "$.columns" || out.Errors[1].Message != "'columns' attribute missing" {
		t.Fatalf("unexpected second error %+v", out.Errors[1])
	}
}

func TestSchemaRule_TypeMismatchMessages(t *testing.T) {
	r := newSchemaRule(schema.Overrides{})
	cases := []struct {
		name    string
		record  map[string]any
		errorAt string
		message string
	}{
		{
			name:    "int parsing",
			record:  map[string]any{"name": "T", "fqn": "a.b", "columns": []any{map[string]any{"name": "c", "type": "integer", "minimum": "x"}}},
			errorAt: "$.columns[0].minimum",
			message: "'minimum' expected to be 'int' type",
		},
		{
			name:    "int from float",
			record:  map[string]any{"name": "T", "fqn": "a.b", "columns": []any{map[string]any{"name": "c", "type": "integer", "maximum": 0.2}}},
			errorAt: "$.columns[0].maximum",
			message: "'maximum' expected to be 'int' type",
		},
		{
			name:    "float type",
			record:  map[string]any{"name": "T", "fqn": "a.b", "columns": []any{map[string]any{"name": "c", "type": "float", "minimum": []any{}}}},
			errorAt: "$.columns[0].minimum",
			message: "'minimum' expected to be 'float' type",
		},
		{
			name:    "string type",
			record:  map[string]any{"name": "T", "fqn": 100, "columns": []any{}},
			errorAt: "$.fqn",
			message: "'fqn' expected to be 'string' type",
		},
		{
			name:    "list type",
			record:  map[string]any{"name": "T", "fqn": "a.b", "columns": map[string]any{}},
			errorAt: "$.columns",
			message: "'columns' expected to be 'list' type",
		},
		{
			name:    "column not object",
			record:  map[string]any{"name": "T", "fqn": "a.b", "columns": []any{100}},
			errorAt: "$.columns[0]",
			message: "'0' expected to be 'object' type",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := r.Validate(tc.record, "f")
			if out.Valid || out.ErrorCount != 1 {
				t.Fatalf("expected one error, got %+v", out)
			}
			e := out.Errors[0]
			if e.ErrorAt != tc.errorAt || e.Message != tc.message {
				t.Fatalf("got (%q, %q), want (%q, %q)", e.ErrorAt, e.Message, tc.errorAt, tc.message)
			}
		})
	}
}

func TestSchemaRule_RootNotObject(t *testing.T) {
	r := newSchemaRule(schema.Overrides{})
	for _, v := range []any{[]any{}, 100, 0.2, "s"} {
		out := r.Validate(v, "f")
		if out.Valid || out.ErrorCount != 1 {
			t.Fatalf("input %v: expected one error, got %+v", v, out)
		}
		e := out.Errors[0]
		if e.ErrorAt != "$" || e.Message != "'$' expected to be 'object' type" {
			t.Fatalf("input %v: got (%q, %q)", v, e.ErrorAt, e.Message)
		}
	}
}

func TestSchemaRule_DiscriminatorErrors(t *testing.T) {
	r := newSchemaRule(schema.Overrides{})

	out := r.Validate(map[string]any{
		"name": "T", "fqn": "a.b",
		"columns": []any{map[string]any{"name": "c"}},
	}, "f")
	if out.Valid || out.Errors[0].ErrorAt != "$.columns[0]" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.Errors[0].Message != "'type' attribute missing" {
		t.Fatalf("unexpected message %q", out.Errors[0].Message)
	}

	out = r.Validate(map[string]any{
		"name": "T", "fqn": "a.b",
		"columns": []any{map[string]any{"name": "c", "type": "invalid_type"}},
	}, "f")
	e := out.Errors[0]
	if e.ErrorAt != "$.columns[0].type" {
		t.Fatalf("unexpected error_at %q", e.ErrorAt)
	}
	want := "'type' expected to be one of ['string', 'integer', 'float', 'boolean', 'date', 'datetime']"
	if e.Message != want {
		t.Fatalf("got %q, want %q", e.Message, want)
	}
	if e.Detail == nil || e.Detail.Kind != "union_tag_invalid" {
		t.Fatalf("unexpected detail %+v", e.Detail)
	}
}

func TestSchemaRule_UnmappedCodePassesMessageVerbatim(t *testing.T) {
	r := newSchemaRule(schema.Overrides{})
	// bool_type is outside the synthesized categories.
	out := r.Validate(map[string]any{
		"name": "T", "fqn": "a.b",
		"columns": []any{map[string]any{"name": "c", "type": "boolean", "nullable": []any{}}},
	}, "f")
	if out.Valid || out.ErrorCount != 1 {
		t.Fatalf("expected one error, got %+v", out)
	}
	e := out.Errors[0]
	if e.Detail == nil || e.Detail.Kind != "bool_type" {
		t.Fatalf("unexpected detail %+v", e.Detail)
	}
	if e.Message != e.Detail.Message {
		t.Fatalf("message should pass through verbatim: %q vs %q", e.Message, e.Detail.Message)
	}
}
