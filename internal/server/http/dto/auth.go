package dto

// AuthRequest describes username/password payload for register and
// login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the signed identity token issued at login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a generic success payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform failure payload. Details carries the
// underlying store message on 500 responses for diagnosability.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
