package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anaphygon/portfolio/internal/usecase"
)

func TestMintVerifyRoundtrip(t *testing.T) {
	p := New("test-secret")
	ctx := context.Background()

	tok, err := p.Mint(ctx, 42)
	require.NoError(t, err)

	id, err := p.Verify(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestVerify_WrongSecret(t *testing.T) {
	ctx := context.Background()

	tok, err := New("secret-a").Mint(ctx, 1)
	require.NoError(t, err)

	_, err = New("secret-b").Verify(ctx, tok)

	var uerr usecase.ErrUnauthorized
	require.ErrorAs(t, err, &uerr)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := New("test-secret").Verify(context.Background(), "not.a.token")

	var uerr usecase.ErrUnauthorized
	require.ErrorAs(t, err, &uerr)
}

func TestVerify_Expired(t *testing.T) {
	p := New("test-secret")

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	require.NoError(t, err)

	_, err = p.Verify(context.Background(), tok)

	var uerr usecase.ErrUnauthorized
	require.ErrorAs(t, err, &uerr)
}

func TestVerify_MissingExpiry(t *testing.T) {
	p := New("test-secret")

	claims := jwt.RegisteredClaims{Subject: "42"}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	require.NoError(t, err)

	_, err = p.Verify(context.Background(), tok)

	var uerr usecase.ErrUnauthorized
	require.ErrorAs(t, err, &uerr)
}

func TestVerify_RejectsUnexpectedAlg(t *testing.T) {
	p := New("test-secret")

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(p.secret)
	require.NoError(t, err)

	_, err = p.Verify(context.Background(), tok)

	var uerr usecase.ErrUnauthorized
	require.ErrorAs(t, err, &uerr)
}
