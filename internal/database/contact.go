package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/anaphygon/portfolio/internal/usecase"
)

type ContactMessage struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Subject   string    `gorm:"column:subject;type:varchar(255)"`
	Message   string    `gorm:"column:message;type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (s *service) CreateContactMessage(ctx context.Context, msg usecase.ContactMessage) (usecase.ContactMessage, error) {
	m := ContactMessage{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	}

	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return usecase.ContactMessage{}, err
	}
	return m.ConvertToUsecase(), nil
}

func (s *service) ListContactMessages(ctx context.Context) ([]usecase.ContactMessage, error) {
	var msgs []ContactMessage

	err := s.db.
		WithContext(ctx).
		Order("created_at DESC").
		Find(&msgs).
		Error
	if err != nil {
		return nil, err
	}

	list := make([]usecase.ContactMessage, 0, len(msgs))
	for _, m := range msgs {
		list = append(list, m.ConvertToUsecase())
	}
	return list, nil
}

func (s *service) GetContactMessageByID(ctx context.Context, id uint) (usecase.ContactMessage, error) {
	var m ContactMessage

	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ContactMessage{}, usecase.ErrNotFound{
				ID:      id,
				Code:    "contact_message_not_found",
				Message: fmt.Sprintf("contact message %d not found", id),
			}
		}
		return usecase.ContactMessage{}, err
	}

	return m.ConvertToUsecase(), nil
}

// Convert core model to Usecase
func (m ContactMessage) ConvertToUsecase() usecase.ContactMessage {
	return usecase.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}
