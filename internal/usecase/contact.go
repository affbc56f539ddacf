package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type ContactMessage struct {
	ID        uint
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// SubmitContactMessage persists a visitor message and enqueues the
// notification emails. The message is the source of truth; a failed
// enqueue is logged and retried never, the admin still sees the
// message in the dashboard.
func (u Usecase) SubmitContactMessage(ctx context.Context, msg ContactMessage) (ContactMessage, error) {
	if strings.TrimSpace(msg.Name) == "" ||
		strings.TrimSpace(msg.Email) == "" ||
		strings.TrimSpace(msg.Message) == "" {
		return ContactMessage{}, ErrValidation{Message: "name, email, and message are required"}
	}

	created, err := u.repo.CreateContactMessage(ctx, msg)
	if err != nil {
		return ContactMessage{}, err
	}

	if u.queueClient != nil {
		if err := u.queueClient.EnqueueContactNotification(ctx, created.ID); err != nil {
			slog.WarnContext(ctx, "failed to enqueue contact notification",
				slog.Uint64("message_id", uint64(created.ID)),
				slog.String("err", err.Error()),
			)
		}
	}

	return created, nil
}

func (u Usecase) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	return u.repo.ListContactMessages(ctx)
}

// NotifyContactMessage sends the owner notification and the visitor
// auto-reply for a stored message. Called from the queue worker.
func (u Usecase) NotifyContactMessage(ctx context.Context, id uint, ownerEmail string) error {
	msg, err := u.repo.GetContactMessageByID(ctx, id)
	if err != nil {
		return err
	}

	owner, err := u.buildOwnerNotification(msg, ownerEmail)
	if err != nil {
		return err
	}
	if err := u.mailer.SendEmail(ctx, owner); err != nil {
		return err
	}

	reply, err := u.buildAutoReply(msg, ownerEmail)
	if err != nil {
		return err
	}
	return u.mailer.SendEmail(ctx, reply)
}
