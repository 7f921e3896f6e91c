package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLLMResponse indicates the LLM endpoint returned a response
// without the expected candidate/part structure. Non-retryable.
var ErrMalformedLLMResponse = errors.New("malformed LLM response: no text candidate")

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// LLMAPIErr represents a non-2xx response from the LLM endpoint.
type LLMAPIErr struct {
	StatusCode int
	Status     string
	Message    string
	// RetryAfterSeconds carries the server-supplied retry hint, 0 when absent.
	RetryAfterSeconds int
}

// Error returns the error message.
func (e *LLMAPIErr) Error() string {
	return fmt.Sprintf("llm api error: status=%d %s: %s", e.StatusCode, e.Status, e.Message)
}

// IsRateLimit reports whether the error is a rate-limit/overload response.
func (e *LLMAPIErr) IsRateLimit() bool {
	return e.StatusCode == 429
}

// IsQuotaExhausted reports whether the error is a quota-related rejection.
func (e *LLMAPIErr) IsQuotaExhausted() bool {
	if e.StatusCode != 403 {
		return false
	}
	lowered := strings.ToLower(e.Message + " " + e.Status)
	return strings.Contains(lowered, "quota") || strings.Contains(lowered, "exceeded")
}
