package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/culinarybook/backend/internal/models"
)

// TokenClaims represents the claims carried by an access token.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID   `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}
