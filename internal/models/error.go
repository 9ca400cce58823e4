package models

// ValidationError is the standardized 400 response body listing every
// constraint violated by a request payload, in field order.
type ValidationError struct {
	Messages []string `json:"messages"`
}

// HasErrors reports whether any violation was collected
func (e ValidationError) HasErrors() bool {
	return len(e.Messages) > 0
}

// NewValidationError creates a validation error from a list of messages
func NewValidationError(messages ...string) ValidationError {
	return ValidationError{Messages: messages}
}
