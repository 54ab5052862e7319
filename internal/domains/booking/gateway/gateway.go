package gateway

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"tatkal/config"
)

// Outcome is a payment gateway verdict.
type Outcome string

const (
	Approved Outcome = "approved"
	Declined Outcome = "declined"
)

// PaymentGateway charges a fare. Charge blocks for however long the gateway
// takes; a context cancelled or expired mid-charge yields Declined, never an
// ambiguous state.
type PaymentGateway interface {
	Charge(ctx context.Context, amount int) (Outcome, error)
}

type simulatedGateway struct {
	delay time.Duration
}

// NewSimulated returns the demo gateway: it approves every charge after the
// configured delay. Declines happen only when the caller's context runs out
// before the delay elapses.
func NewSimulated(cfg *config.Config) PaymentGateway {
	return &simulatedGateway{
		delay: time.Duration(cfg.Booking.PaymentDelayMillis) * time.Millisecond,
	}
}

func (g *simulatedGateway) Charge(ctx context.Context, amount int) (Outcome, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		log.Warn().Int("amount", amount).Msg("payment abandoned before gateway responded")

		return Declined, nil
	case <-timer.C:
		return Approved, nil
	}
}
