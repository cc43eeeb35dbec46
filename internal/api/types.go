// Package api defines the shared response envelopes used by HTTP handlers.
package api

// ErrorResponse is the generic error envelope returned on failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success envelope for requests without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT returned on successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
