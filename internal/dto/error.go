package dto

// ErrorBody is the machine-readable part of an error response.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is returned by every endpoint on failure. Clients read
// error.message first and fall back to message.
type ErrorResponse struct {
	Error   ErrorBody `json:"error"`
	Message string    `json:"message"`
}
