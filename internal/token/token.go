package token

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anaphygon/portfolio/internal/config"
	"github.com/anaphygon/portfolio/internal/usecase"
)

// Provider mints and verifies HS256 bearer credentials. The subject
// claim carries the user id; tokens expire after
// config.TOKEN_VALIDITY_HOURS.
type Provider struct {
	secret []byte
}

func New(secret string) *Provider {
	if secret == "" {
		panic("token: JWT secret must be provided")
	}
	return &Provider{secret: []byte(secret)}
}

func (p *Provider) Mint(_ context.Context, userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(config.TOKEN_VALIDITY_HOURS * time.Hour)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *Provider) Verify(_ context.Context, tokenString string) (uint, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			return p.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, usecase.ErrUnauthorized{Message: "invalid token"}
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, usecase.ErrUnauthorized{Message: "invalid token"}
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, usecase.ErrUnauthorized{Message: fmt.Sprintf("invalid subject %q", claims.Subject)}
	}

	return uint(id), nil
}
