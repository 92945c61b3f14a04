package service

import "fmt"

// UpstreamError indicates the generative-text or video collaborator failed.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream call failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ParseError indicates the model output did not contain the expected JSON.
// Excerpt carries a truncated slice of the raw text for diagnosis.
type ParseError struct {
	Excerpt string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PersistenceError indicates a storage write failed after the pipeline
// otherwise succeeded.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage write failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
