package source_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/goccy/go-json"

	"github.com/schemax/schemax/source"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := write(t, "s.json", `{"name": "T", "version": "1.0", "columns": [{"minimum": 5}]}`)
	v, err := source.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	if obj["name"] != "T" {
		t.Fatalf("unexpected tree %v", obj)
	}
	// Numbers survive as json.Number, not float64.
	col := obj["columns"].([]any)[0].(map[string]any)
	if _, ok := col["minimum"].(json.Number); !ok {
		t.Fatalf("expected json.Number, got %T", col["minimum"])
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"s.yaml", "s.yml"} {
		path := write(t, name, "name: T\ncolumns:\n  - name: c\n    type: integer\nmetadata:\n  owner: data\n")
		v, err := source.Load(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		want := map[string]any{
			"name": "T",
			"columns": []any{
				map[string]any{"name": "c", "type": "integer"},
			},
			"metadata": map[string]any{"owner": "data"},
		}
		if !reflect.DeepEqual(v, want) {
			t.Fatalf("%s: got %#v", name, v)
		}
	}
}

func TestLoad_ExtensionCaseInsensitive(t *testing.T) {
	path := write(t, "s.JSON", `{"name": "T"}`)
	if _, err := source.Load(path); err != nil {
		t.Fatalf("uppercase extension should load: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := source.Load(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	for _, name := range []string{"s.txt", "s"} {
		path := write(t, name, "whatever")
		_, err := source.Load(path)
		if !errors.Is(err, source.ErrUnsupportedFormat) {
			t.Fatalf("%s: expected ErrUnsupportedFormat, got %v", name, err)
		}
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad.json":      `{"name": `,
		"trailing.json": `{"name": "T"} {"again": true}`,
		"bad.yaml":      "name: [unclosed\n  - broken",
	}
	for name, content := range cases {
		path := write(t, name, content)
		_, err := source.Load(path)
		if !errors.Is(err, source.ErrParse) {
			t.Fatalf("%s: expected ErrParse, got %v", name, err)
		}
	}
}

func TestLoad_NonObjectRoots(t *testing.T) {
	// Any valid document decodes; shape enforcement is not the loader's job.
	path := write(t, "list.json", `[1, 2]`)
	v, err := source.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := v.([]any); !ok {
		t.Fatalf("expected list, got %T", v)
	}
}
