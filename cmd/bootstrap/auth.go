package bootstrap

import (
	"eatyaar/internal/pkg/challenge"
	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/config"
	"eatyaar/internal/pkg/ratelimit"

	"go.uber.org/fx"
)

// AuthModule wires the in-memory verification-code store and the send-code
// rate limiter from config.
var AuthModule = fx.Module("auth",
	fx.Provide(
		NewChallengeStore,
		NewSendLimiter,
	),
)

func NewChallengeStore(cfg config.Config, clk clock.Clock) *challenge.Store {
	return challenge.NewStore(clk,
		challenge.WithTTL(cfg.Auth.CodeTTL),
		challenge.WithMaxAttempts(cfg.Auth.CodeMaxAttempts),
	)
}

func NewSendLimiter(cfg config.Config, clk clock.Clock) *ratelimit.Limiter {
	return ratelimit.NewLimiter(clk,
		ratelimit.WithWindow(cfg.Auth.SendWindow),
		ratelimit.WithLimit(cfg.Auth.SendWindowLimit),
	)
}
