package notification

import (
	"context"
	"fmt"
	"log/slog"
)

// Dispatcher turns a Notifier into the boolean contract the login screen uses:
// one submission attempt, faults logged and swallowed.
type Dispatcher struct {
	notifier Notifier
	logger   *slog.Logger
}

// NewDispatcher wraps notifier.
func NewDispatcher(notifier Notifier, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{notifier: notifier, logger: logger}
}

// Send reports whether the submission call completed without a fault. It does
// not retry and does not wait for a delivery receipt.
func (d *Dispatcher) Send(ctx context.Context, destination, body string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.logFailure(destination, fmt.Errorf("panic: %v", r))
			ok = false
		}
	}()

	if d == nil || d.notifier == nil {
		return false
	}
	err := d.notifier.Send(ctx, Message{Kind: KindVerificationCode, Destination: destination, Body: body})
	if err != nil {
		d.logFailure(destination, err)
		return false
	}
	return true
}

func (d *Dispatcher) logFailure(destination string, err error) {
	if d == nil || d.logger == nil {
		return
	}
	d.logger.Error("sms dispatch failed", slog.String("destination", destination), slog.Any("error", err))
}
