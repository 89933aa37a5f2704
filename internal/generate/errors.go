// Package generate assembles tailoring requests for the external AI
// collaborator and parses its responses.
package generate

import "fmt"

// GenerationError represents a failed call to the generation
// collaborator: unreachable service, non-success status, or a response
// with no usable content. Callers surface it as a retryable failure and
// persist no partial state.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// ValidationError represents missing or malformed generation inputs,
// rejected synchronously before any external call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
