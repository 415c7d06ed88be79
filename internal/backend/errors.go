package backend

import "fmt"

// Kind classifies a failed backend call
type Kind int

const (
	// KindServer is a non-2xx response with a body
	KindServer Kind = iota
	// KindUnauthorized is a missing or expired credential (401/403)
	KindUnauthorized
	// KindNetwork means no response reached the console
	KindNetwork
)

// APIError represents a classified backend failure
type APIError struct {
	Kind   Kind
	Status int
	Detail string
	Err    error
}

// Error implements the error interface
func (e *APIError) Error() string {
	switch e.Kind {
	case KindUnauthorized:
		return fmt.Sprintf("backend rejected credential (status %d)", e.Status)
	case KindNetwork:
		return fmt.Sprintf("backend unreachable: %v", e.Err)
	default:
		if e.Detail != "" {
			return fmt.Sprintf("backend returned status %d: %s", e.Status, e.Detail)
		}
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
}

// Unwrap returns the underlying transport error, if any
func (e *APIError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether err is a credential rejection
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Kind == KindUnauthorized
}
