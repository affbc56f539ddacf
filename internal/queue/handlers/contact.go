package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

type contactNotificationPayload struct {
	MessageID uint `json:"message_id"`
}

// HandleContactNotification sends the owner notification and the
// visitor auto-reply for a persisted contact message.
func (h *Handlers) HandleContactNotification(ctx context.Context, task *asynq.Task) error {
	var payload contactNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	slog.InfoContext(ctx, "Processing contact notification...",
		slog.Uint64("message_id", uint64(payload.MessageID)),
	)

	if err := h.usecase.NotifyContactMessage(ctx, payload.MessageID, h.ownerEmail); err != nil {
		slog.ErrorContext(ctx, "Error processing contact notification",
			slog.String("err", err.Error()),
		)
		return err
	}

	slog.InfoContext(ctx, "Contact notification completed successfully")
	return nil
}
