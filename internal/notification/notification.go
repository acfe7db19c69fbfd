package notification

import (
	"context"
	"log/slog"
)

const (
	// KindVerificationCode marks the onboarding SMS carrying the token.
	KindVerificationCode = "verification_code"
)

// Message describes an outbound SMS.
type Message struct {
	Kind        string
	Destination string
	Body        string
}

// Notifier submits messages to a messaging provider.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier simulates delivery by writing messages to the logger.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier for development.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("sms simulated", "kind", message.Kind, "destination", message.Destination, "body", message.Body)
	return nil
}
