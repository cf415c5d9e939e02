package auth

import "time"

// Config drives token verification.
type Config struct {
	Secret   string
	TokenTTL time.Duration
	Issuer   string
}

// Claims are extracted from the JWT token.
type Claims struct {
	UserID    int64
	Email     string
	TokenType string
	ExpiresAt time.Time
}
