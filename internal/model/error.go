package model

// ErrorResponse is what a failing command prints in --json mode.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
