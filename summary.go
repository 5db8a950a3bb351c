package schemax

// Summary accumulates batch-level results, one Add call per outcome.
type Summary struct {
	ValidatedFileCount int      `json:"validated_file_count"`
	ValidFileCount     int      `json:"valid_file_count"`
	InvalidFileCount   int      `json:"invalid_file_count"`
	ErrorFiles         []string `json:"error_files"`
}

// NewSummary returns an empty accumulator.
func NewSummary() *Summary {
	return &Summary{ErrorFiles: []string{}}
}

// Add records one outcome.
func (s *Summary) Add(valid bool, sourceID string) {
	s.ValidatedFileCount++
	if valid {
		s.ValidFileCount++
		return
	}
	s.InvalidFileCount++
	s.ErrorFiles = append(s.ErrorFiles, sourceID)
}
