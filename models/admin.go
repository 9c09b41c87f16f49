package models

import "time"

// LoginRequest is the credential pair submitted by the console login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is the body returned by the platform's logInAdmin endpoint.
type LoginResult struct {
	Status  bool   `json:"status"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// Session holds one admin's console session. The Token field carries the
// upstream admin token and is never serialized to the browser.
type Session struct {
	ID        string    `json:"sessionId"`
	Email     string    `json:"email"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SessionInfo is what the session-check endpoint reports back to the UI.
type SessionInfo struct {
	Valid     bool      `json:"valid"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}
