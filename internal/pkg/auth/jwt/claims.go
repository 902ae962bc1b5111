package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the JSON Web Token (JWT) claims issued at login.
// It combines the standard claims required for validity checks with the
// identity of the authenticated user.
type Payload struct {
	// StandardClaims embeds the required JWT fields such as ExpiresAt,
	// IssuedAt, and Issuer.
	jwt.StandardClaims

	// ID is the unique identifier of the authenticated user (the token subject).
	ID string `json:"id"`
}
