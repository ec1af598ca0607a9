// internal/api/types/response.go
package types

// MessageResponse is the envelope for mutation acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the single error envelope every endpoint uses.
type ErrorResponse struct {
	Error string `json:"error"`
}
