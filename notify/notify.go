package notify

import (
	"context"

	"go.uber.org/zap"
)

// Notifier delivers out-of-band messages to users. Calls are
// fire-and-forget: no core operation depends on delivery for correctness.
type Notifier interface {
	SendOTP(ctx context.Context, otp int, phone string) error
}

// LogNotifier stands in for an SMS provider and only records that a send
// happened. The code itself is not logged.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) SendOTP(ctx context.Context, otp int, phone string) error {
	n.Logger.Info("otp notification dispatched", zap.String("phone", phone))
	return nil
}
