package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/infra"
	"happy-hotel/internal/pkg/errs"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeOptions struct {
	Currency      string
	PaymentMethod string
	// APIURL overrides the Stripe endpoint, e.g. for stripe-mock.
	APIURL string
}

// StripeGateway charges prepaid bookings with a confirmed PaymentIntent.
type StripeGateway struct {
	api           *client.API
	currency      string
	paymentMethod string
}

func NewStripeGateway(secretKey string, opts StripeOptions) *StripeGateway {
	var backends *stripe.Backends
	if opts.APIURL != "" {
		backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			URL:               stripe.String(opts.APIURL),
			MaxNetworkRetries: stripe.Int64(0),
			LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
		})
		backends = &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
	}

	api := &client.API{}
	api.Init(secretKey, backends)

	return &StripeGateway{
		api:           api,
		currency:      strings.ToLower(opts.Currency),
		paymentMethod: opts.PaymentMethod,
	}
}

func (g *StripeGateway) Charge(ctx context.Context, req booking.BookingRequest, amount float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(booking.MinorUnits(amount)),
		Currency:           stripe.String(g.currency),
		PaymentMethod:      stripe.String(g.paymentMethod),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Confirm:            stripe.Bool(true),
		Description:        stripe.String(fmt.Sprintf("Booking %s, room %s", req.ID, req.RoomID)),
	}
	params.Context = ctx
	params.SetIdempotencyKey("booking-" + req.ID)
	params.AddMetadata("booking_id", req.ID)
	params.AddMetadata("room_id", req.RoomID)

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return "", errs.Mark(errs.Wrap(err, "card declined"), booking.ErrPaymentDeclined)
		}
		return "", infra.WrapRepoErr("stripe request failed", err, infra.KindExternalService)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return "", errs.Mark(
			errs.New(fmt.Sprintf("payment intent %s ended in status %s", intent.ID, intent.Status)),
			booking.ErrPaymentDeclined,
		)
	}

	return intent.ID, nil
}
