package dto

import "time"

// LoginRequest carries email and password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// GoogleExchangeCodeRequest carries the authorization code returned by Google.
type GoogleExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLoginURLResponse is the consent URL and the CSRF state embedded in it.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
