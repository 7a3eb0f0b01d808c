package domain

// APIError represents a generic JSON error response body for API errors.
// It provides a simple structure with a single "error" field containing a message.
type APIError struct {
	// Error contains a human-readable message describing the error.
	// Example: "failed to render page"
	Error string `json:"error" example:"failed to render page"`
}
