package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// MessageResponse is returned by operations that have no payload
type MessageResponse struct {
	Message string `json:"message"`
}
