package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type User struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Username  string    `gorm:"column:username;type:varchar(100);not null;uniqueIndex"`
	Password  string    `gorm:"column:password;type:varchar(255);not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (s *service) GetUserByID(ctx context.Context, id uint) (usecase.User, error) {
	var u User

	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.User{}, usecase.ErrNotFound{
				ID:      id,
				Code:    "user_not_found",
				Message: fmt.Sprintf("user %d not found", id),
			}
		}
		return usecase.User{}, err
	}

	return u.ConvertToUsecase(), nil
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (usecase.User, error) {
	var u User

	err := s.db.WithContext(ctx).First(&u, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.User{}, usecase.ErrNotFound{
				Code:    "user_not_found",
				Message: "user not found",
			}
		}
		return usecase.User{}, err
	}

	return u.ConvertToUsecase(), nil
}

// Convert core model to Usecase
func (u User) ConvertToUsecase() usecase.User {
	return usecase.User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
