package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viren1298/event-booking-system/internal/redis"
)

// BookingNotification is the payload sent when a booking is confirmed
type BookingNotification struct {
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	EventTitle string `json:"event_title"`
	Quantity   int    `json:"quantity"`
	Amount     string `json:"amount"`
	SentAt     string `json:"sent_at"`
}

// Notifier defines the interface for booking confirmation notifications
type Notifier interface {
	// NotifyBookingConfirmed sends a confirmation notification to the user
	NotifyBookingConfirmed(ctx context.Context, notification *BookingNotification) error
}

// RedisNotifier implements Notifier by publishing to a Redis channel. A
// separate delivery worker subscribes and fans out to email or push.
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

// NewRedisNotifier creates a new RedisNotifier
func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	if channel == "" {
		channel = "booking-notifications"
	}
	return &RedisNotifier{
		client:  client,
		channel: channel,
	}
}

// NotifyBookingConfirmed publishes the notification payload as JSON
func (n *RedisNotifier) NotifyBookingConfirmed(ctx context.Context, notification *BookingNotification) error {
	if notification == nil {
		return fmt.Errorf("notification is required")
	}

	if notification.SentAt == "" {
		notification.SentAt = time.Now().UTC().Format(time.RFC3339)
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err := n.client.Publish(ctx, n.channel, payload); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}

// NoOpNotifier is a no-op implementation of Notifier for testing and for
// deployments without a notification worker
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new no-op notifier
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// NotifyBookingConfirmed is a no-op
func (n *NoOpNotifier) NotifyBookingConfirmed(ctx context.Context, notification *BookingNotification) error {
	return nil
}

var (
	_ Notifier = (*RedisNotifier)(nil)
	_ Notifier = (*NoOpNotifier)(nil)
)
