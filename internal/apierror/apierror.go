// Package apierror defines the response envelopes used for every 4xx/5xx
// answer. Routing all client-visible errors through here keeps the shape
// uniform and guarantees internals (stack traces, SQL errors) never leak.
package apierror

// APIError is the canonical error body for all non-2xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field failures from request validation.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
