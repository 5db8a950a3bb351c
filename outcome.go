package schemax

// Failure kinds reported on validation errors. The structural rule reports
// validation_error; loading failures and the stateful rules use the rest.
const (
	KindValidationError       = "validation_error"
	KindFileNotFound          = "file_not_found"
	KindUnsupportedFormat     = "unsupported_format"
	KindParseError            = "parse_error"
	KindMissingFQN            = "missing_fqn"
	KindDuplicateFQN          = "duplicate_fqn"
	KindInvalidType           = "invalid_type"
	KindDependentFileNotFound = "dependent_file_not_found"
	KindCircularDependency    = "circular_dependency_detected"
)

// ErrorDetail is the raw {kind, message} pair from the underlying structural
// check, stripped of location and context. It is nil for non-structural
// failures.
type ErrorDetail struct {
	Kind    string `json:"type"`
	Message string `json:"msg"`
}

// ValidationError is one located, human- and machine-readable violation.
type ValidationError struct {
	Kind    string       `json:"type"`
	ErrorAt string       `json:"error_at"`
	Message string       `json:"message"`
	Detail  *ErrorDetail `json:"pydantic_error"`
}

// Outcome is the result of running a rule pipeline (or a single rule) over
// one source. It is immutable after return.
type Outcome struct {
	SourceID   string            `json:"file_path"`
	Valid      bool              `json:"valid"`
	ErrorCount int               `json:"error_count"`
	Errors     []ValidationError `json:"errors"`
}

// OK returns a passing outcome for sourceID.
func OK(sourceID string) Outcome {
	return Outcome{SourceID: sourceID, Valid: true, Errors: []ValidationError{}}
}

// Fail returns a failing outcome carrying errs in the given order.
func Fail(sourceID string, errs ...ValidationError) Outcome {
	return Outcome{
		SourceID:   sourceID,
		Valid:      false,
		ErrorCount: len(errs),
		Errors:     errs,
	}
}
