package usecase

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

import (
	"context"

	"happy-hotel/internal/domain/booking"
)

// RoomInventory reports free rooms and hands out room identifiers.
// FindAvailableRoomID fails with booking.ErrNoRoomAvailable when nothing
// can be allocated; a successful allocation is visible to later
// GetAvailableRooms calls.
type RoomInventory interface {
	GetAvailableRooms(ctx context.Context) ([]booking.Room, error)
	FindAvailableRoomID(ctx context.Context, req booking.BookingRequest) (string, error)
	ReleaseRoom(ctx context.Context, roomID string) error
}

// PaymentGateway returns a provider token, or an error marked with
// booking.ErrPaymentDeclined when the charge is rejected.
type PaymentGateway interface {
	Charge(ctx context.Context, req booking.BookingRequest, amount float64) (string, error)
}

type BookingRepository interface {
	Save(ctx context.Context, req booking.BookingRequest) error
	Get(ctx context.Context, id string) (booking.BookingRequest, error)
	Delete(ctx context.Context, id string) error
}

type NotificationSender interface {
	SendBookingConfirmation(ctx context.Context, req booking.BookingRequest) error
}

type CurrencyConverter interface {
	ToForeignCurrency(amount float64) float64
}
