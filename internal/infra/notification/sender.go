package notification

import (
	"context"
	"log/slog"

	"eatyaar/internal/pkg/challenge"
	"eatyaar/internal/usecase"
)

// LogSender writes codes to the structured log instead of an SMS gateway.
// Swap in a real provider behind usecase.CodeSender when one is wired up.
type LogSender struct{}

func NewLogSender() usecase.CodeSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, phone, code string) error {
	slog.Info("verification code issued",
		"phone", challenge.Mask(phone), "code", code)
	return nil
}
