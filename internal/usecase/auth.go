package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/anaphygon/portfolio/internal/config"
)

type User struct {
	ID        uint
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Login verifies admin credentials and mints a bearer token carrying
// the user id as subject.
func (u Usecase) Login(ctx context.Context, username, password string) (User, string, error) {
	if username == "" || password == "" {
		return User{}, "", ErrValidation{Message: "username and password are required"}
	}

	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return User{}, "", ErrUnauthorized{Message: "invalid password"}
		}
		return User{}, "", err
	}

	token, err := u.tokenProvider.Mint(ctx, user.ID)
	if err != nil {
		return User{}, "", err
	}

	return user, token, nil
}

// GetMe resolves the authenticated user from the request context.
func (u Usecase) GetMe(ctx context.Context) (User, error) {
	userID, ok := ctx.Value(config.CTX_KEY_USER_ID).(uint)
	if !ok {
		return User{}, ErrUnauthorized{Message: "user id not found in context"}
	}

	return u.repo.GetUserByID(ctx, userID)
}
