package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/candrasdkd/easywork/internal/model"
)

// sessionClaims is the HS256 session token payload. The admin capability is
// decided once here; no later check looks at the email again.
type sessionClaims struct {
	jwt.RegisteredClaims

	Email       string `json:"email"`
	DisplayName string `json:"name,omitempty"`
	Admin       bool   `json:"admin"`
}

func issueSessionToken(secret []byte, ttl time.Duration, who model.Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   who.UID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:       who.Email,
		DisplayName: who.DisplayName,
		Admin:       who.Admin,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

func parseSessionToken(secret []byte, tokenString string) (model.Identity, error) {
	var claims sessionClaims

	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return model.Identity{}, errors.Join(model.ErrUnauthorized, err)
	}
	if !tok.Valid || claims.Subject == "" {
		return model.Identity{}, model.ErrUnauthorized
	}

	return model.Identity{
		UID:         claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		Admin:       claims.Admin,
	}, nil
}
