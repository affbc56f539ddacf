package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
)

const TaskNotifyContact = "notify:contact"

type ContactNotificationPayload struct {
	MessageID uint `json:"message_id"`
}

// Client wraps asynq.Client for enqueuing tasks
type Client struct {
	client *asynq.Client
}

// NewClient creates a new queue client
func NewClient(redisAddr string, redisPassword string) *Client {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	return &Client{
		client: client,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueContactNotification enqueues the notification emails for a
// stored contact message.
func (c *Client) EnqueueContactNotification(ctx context.Context, messageID uint) error {
	payload, err := json.Marshal(ContactNotificationPayload{MessageID: messageID})
	if err != nil {
		return fmt.Errorf("failed to marshal task payload: %w", err)
	}

	task := asynq.NewTask(TaskNotifyContact, payload)

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	slog.InfoContext(ctx, "enqueued task",
		slog.String("id", info.ID),
		slog.String("queue", info.Queue),
		slog.String("type", task.Type()),
	)
	return nil
}
