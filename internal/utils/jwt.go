package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type jwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session JWT for the provided user.
func GenerateToken(secret string, userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	claims := &jwtCustomClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates the token and returns the embedded user ID and
// email. Any parse or validation failure yields an error; callers must
// treat that as an unauthenticated request.
func ParseToken(secret, tokenString string) (uuid.UUID, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return uuid.Nil, "", err
	}

	if claims, ok := token.Claims.(*jwtCustomClaims); ok && token.Valid {
		id, err := uuid.Parse(claims.UserID)
		if err != nil {
			return uuid.Nil, "", err
		}
		return id, claims.Email, nil
	}

	return uuid.Nil, "", jwt.ErrTokenInvalidClaims
}
