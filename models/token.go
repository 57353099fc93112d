package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type discriminator values carried in the "type" claim of every
// issued JWT. The authorization middleware only accepts TokenTypeAccess;
// the refresh endpoint only accepts TokenTypeRefresh.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.RegisteredClaims] for standard claim access (subject,
// expiry, issuer) and adds the "type" claim that discriminates access
// tokens from refresh tokens.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted to clients.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// uuid.UUID. It is populated during parsing and avoids repeated
// string-to-UUID conversion.
type Token struct {
	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// TokenType is the "type" claim: either "access" or "refresh".
	TokenType string `json:"type"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from claims serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from claims serialization; it is an internal server-side cache.
	UserID uuid.UUID `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a UUID, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or is not a
// valid UUID.
func (t *Token) GetUserID() (uuid.UUID, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := uuid.Parse(userIDString)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting UserID from token to UUID: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the response body of the login and refresh endpoints: a
// freshly issued access/refresh token pair plus the public projection of
// the authenticated user.
type TokenPair struct {
	// AccessToken is the short-lived token authorizing resource operations.
	AccessToken string `json:"access_token"`

	// RefreshToken is the long-lived token whose sole purpose is obtaining
	// a new access/refresh pair.
	RefreshToken string `json:"refresh_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`

	// User is the public projection of the token owner.
	User PublicUser `json:"user"`
}
