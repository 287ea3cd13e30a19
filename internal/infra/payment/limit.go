package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/pkg/errs"

	"github.com/google/uuid"
)

type Charge struct {
	Token     string
	BookingID string
	Amount    float64
	ChargedAt time.Time
}

// LimitGateway authorizes any charge up to a fixed amount and keeps an
// in-memory ledger. It backs local and test deployments.
type LimitGateway struct {
	limit float64

	mu      sync.Mutex
	charges []Charge
}

func NewLimitGateway(limit float64) *LimitGateway {
	return &LimitGateway{limit: limit}
}

func (g *LimitGateway) Charge(ctx context.Context, req booking.BookingRequest, amount float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if amount <= 0 {
		return "", errs.Mark(errs.New(fmt.Sprintf("amount %.2f must be positive", amount)), booking.ErrPaymentDeclined)
	}
	if amount > g.limit {
		return "", errs.Mark(
			errs.New(fmt.Sprintf("amount %.2f exceeds authorization limit %.2f", amount, g.limit)),
			booking.ErrPaymentDeclined,
		)
	}

	charge := Charge{
		Token:     uuid.New().String(),
		BookingID: req.ID,
		Amount:    amount,
		ChargedAt: time.Now().UTC(),
	}

	g.mu.Lock()
	g.charges = append(g.charges, charge)
	g.mu.Unlock()

	return charge.Token, nil
}

func (g *LimitGateway) Charges() []Charge {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Charge, len(g.charges))
	copy(out, g.charges)
	return out
}
