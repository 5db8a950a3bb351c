package schemax

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/schemax/schemax/source"
)

// LoadFunc resolves a path to a parsed JSON-like tree. Failures are
// classified with the source package sentinels.
type LoadFunc func(path string) (any, error)

// Pipeline sequences the configured rules over one batch of files. It owns
// exactly one long-lived instance of each stateful rule for the batch, so
// the fqn registry and the dependency graphs persist across files and two
// independent pipelines never interfere.
type Pipeline struct {
	rules []Rule
	load  LoadFunc
}

// NewPipeline builds an orchestrator over rules. A nil load falls back to
// the default file loader.
func NewPipeline(rules []Rule, load LoadFunc) *Pipeline {
	if load == nil {
		load = source.Load
	}
	return &Pipeline{rules: rules, load: load}
}

// ValidateFile runs the pipeline for one file: load, then each rule in
// order, stopping at the first rule reporting invalid. Loading failures are
// terminal for the file and skip all rules.
func (p *Pipeline) ValidateFile(path string) Outcome {
	data, err := p.load(path)
	if err != nil {
		return loadFailure(path, err)
	}
	for _, r := range p.rules {
		if out := r.Validate(data, path); !out.Valid {
			return out
		}
	}
	return OK(path)
}

func loadFailure(path string, err error) Outcome {
	switch {
	case errors.Is(err, source.ErrNotFound):
		return Fail(path, ValidationError{
			Kind:    KindFileNotFound,
			ErrorAt: "$",
			Message: fmt.Sprintf("'%s' not found", path),
		})
	case errors.Is(err, source.ErrUnsupportedFormat):
		return Fail(path, ValidationError{
			Kind:    KindUnsupportedFormat,
			ErrorAt: "$",
			Message: fmt.Sprintf("'%s' of type '%s' not supported", path, filepath.Ext(path)),
		})
	default:
		return Fail(path, ValidationError{
			Kind:    KindParseError,
			ErrorAt: "$",
			Message: "error parsing file",
		})
	}
}
