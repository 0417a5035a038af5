package models

// ErrorResponse - body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse - body of requests that have nothing to return but a confirmation
type MessageResponse struct {
	Message string `json:"message"`
}
