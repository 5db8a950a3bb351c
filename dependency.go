package schemax

import (
	"fmt"
	"os"
	"strings"

	"github.com/schemax/schemax/internal/graph"
)

// DependencyRule validates one reference direction (depends_on or
// dependents) across a batch. Each instance owns an independent adjacency
// map; a cycle in one direction never affects the other's state.
type DependencyRule struct {
	field  string
	graph  *graph.Graph
	exists func(path string) bool
}

// NewDependencyRule wires a direction field name to its graph. References
// are checked for existence with os.Stat.
func NewDependencyRule(field string, g *graph.Graph) *DependencyRule {
	return &DependencyRule{
		field: field,
		graph: g,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
}

func (r *DependencyRule) Name() string { return r.field }

func (r *DependencyRule) Validate(data any, sourceID string) Outcome {
	obj, _ := data.(map[string]any)
	raw, present := obj[r.field]
	if !present {
		raw = []any{}
	}

	items, ok := raw.([]any)
	if !ok {
		return Fail(sourceID, ValidationError{
			Kind:    KindInvalidType,
			ErrorAt: "$." + r.field,
			Message: fmt.Sprintf("'%s' must be a list", r.field),
		})
	}
	refs := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return Fail(sourceID, ValidationError{
				Kind:    KindInvalidType,
				ErrorAt: "$." + r.field,
				Message: fmt.Sprintf("'%s' must be a list of strings", r.field),
			})
		}
		refs = append(refs, s)
	}

	for _, ref := range refs {
		if !r.exists(ref) {
			return Fail(sourceID, ValidationError{
				Kind:    KindDependentFileNotFound,
				ErrorAt: "$." + r.field,
				Message: fmt.Sprintf("File '%s' provided in '%s' field not found", ref, r.field),
			})
		}
	}

	// The edge is recorded before the cycle probe: a failing probe still
	// leaves it registered.
	r.graph.Set(sourceID, refs)

	if cycle := r.graph.Cycle(); cycle != nil {
		return Fail(sourceID, ValidationError{
			Kind:    KindCircularDependency,
			ErrorAt: "$." + r.field,
			Message: "circular dependency present: " + strings.Join(cycle, " -> "),
		})
	}
	return OK(sourceID)
}
