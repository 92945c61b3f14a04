package types

import "github.com/google/uuid"

// TokenClaims holds the claims extracted from a validated JWT.
type TokenClaims struct {
	UserID uuid.UUID
}
