package users

import (
	"context"

	"github.com/dmitrijs2005/userholder/internal/logging"
)

// Notifier delivers an access code to a phone number.
type Notifier interface {
	Deliver(ctx context.Context, phone, code string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, phone, code string) error

func (f NotifierFunc) Deliver(ctx context.Context, phone, code string) error {
	return f(ctx, phone, code)
}

// LogNotifier stands in for a real delivery channel by logging the code.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(l logging.Logger) *LogNotifier {
	return &LogNotifier{logger: l.With("component", "notifier")}
}

func (n *LogNotifier) Deliver(ctx context.Context, phone, code string) error {
	n.logger.Info(ctx, "sending access code", "phone", phone, "code", code)
	return nil
}
