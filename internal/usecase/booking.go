package usecase

//go:generate mockgen -source=booking.go -destination=../../tests/mock/usecase/booking.go -package=usecasemock

import (
	"context"
	"log/slog"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/infra"
	"happy-hotel/internal/pkg/errs"
	"happy-hotel/internal/pkg/metrics"

	"github.com/google/uuid"
)

type BookingUseCase interface {
	CalculatePrice(req booking.BookingRequest) float64
	CalculatePriceInForeignCurrency(req booking.BookingRequest) float64
	GetAvailablePlaceCount(ctx context.Context) (int, error)
	MakeBooking(ctx context.Context, req booking.BookingRequest) (string, error)
	CancelBooking(ctx context.Context, bookingID string) error
	GetBooking(ctx context.Context, bookingID string) (booking.BookingRequest, error)
}

// BookingService owns no state between calls; everything durable lives in
// the collaborators.
type BookingService struct {
	rooms           RoomInventory
	payments        PaymentGateway
	bookings        BookingRepository
	notifier        NotificationSender
	converter       CurrencyConverter
	priceCalculator booking.PriceCalculator
	logger          *slog.Logger
}

func NewBookingService(
	rooms RoomInventory,
	payments PaymentGateway,
	bookings BookingRepository,
	notifier NotificationSender,
	converter CurrencyConverter,
	priceCalculator booking.PriceCalculator,
	logger *slog.Logger,
) *BookingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookingService{
		rooms:           rooms,
		payments:        payments,
		bookings:        bookings,
		notifier:        notifier,
		converter:       converter,
		priceCalculator: priceCalculator,
		logger:          logger,
	}
}

func (s *BookingService) CalculatePrice(req booking.BookingRequest) float64 {
	return s.priceCalculator.CalculatePrice(req)
}

func (s *BookingService) CalculatePriceInForeignCurrency(req booking.BookingRequest) float64 {
	return s.converter.ToForeignCurrency(s.CalculatePrice(req))
}

func (s *BookingService) GetAvailablePlaceCount(ctx context.Context) (int, error) {
	rooms, err := s.rooms.GetAvailableRooms(ctx)
	if err != nil {
		return 0, errs.Wrap(err, "get available rooms")
	}
	return booking.TotalCapacity(rooms), nil
}

// MakeBooking runs allocate → charge (prepaid only) → save → notify and stops
// at the first failure. A declined charge or a failed save gives the room back
// before returning. A failed confirmation leaves the booking saved and paid.
func (s *BookingService) MakeBooking(ctx context.Context, req booking.BookingRequest) (string, error) {
	if req.ID == "" {
		req = req.WithID(uuid.New().String())
	}

	roomID, err := s.rooms.FindAvailableRoomID(ctx, req)
	if err != nil {
		return "", errs.Wrap(err, "allocate room")
	}
	if roomID == "" {
		return "", errs.Wrap(errs.Mark(errs.New("inventory returned an empty room id"), booking.ErrNoRoomAvailable), "allocate room")
	}
	req = req.WithRoomID(roomID)

	if req.Prepaid {
		price := s.CalculatePrice(req)
		paymentID, err := s.payments.Charge(ctx, req, price)
		if err != nil {
			return "", s.releaseAfterFailure(ctx, req, errs.Wrap(err, "charge prepaid booking"))
		}
		metrics.AddCharged(price)
		s.logger.Info("prepaid booking charged",
			slog.String("booking_id", req.ID),
			slog.String("payment_id", paymentID),
			slog.Float64("amount", price),
		)
	}

	if err := s.bookings.Save(ctx, req); err != nil {
		return "", s.releaseAfterFailure(ctx, req, errs.Wrap(err, "save booking"))
	}

	if err := s.notifier.SendBookingConfirmation(ctx, req); err != nil {
		s.logger.Warn("booking saved but confirmation was not sent",
			slog.String("booking_id", req.ID),
			slog.String("error", err.Error()),
		)
		return "", errs.Wrap(err, "send booking confirmation")
	}

	s.logger.Info("booking created",
		slog.String("booking_id", req.ID),
		slog.String("room_id", req.RoomID),
		slog.Int("nights", req.Nights()),
		slog.Int("room_count", req.RoomCount),
		slog.Bool("prepaid", req.Prepaid),
	)

	return req.ID, nil
}

// releaseAfterFailure returns cause unchanged; a release error only rides along
// as a secondary error.
func (s *BookingService) releaseAfterFailure(ctx context.Context, req booking.BookingRequest, cause error) error {
	if err := s.rooms.ReleaseRoom(ctx, req.RoomID); err != nil {
		s.logger.Warn("room stays claimed after failed booking",
			slog.String("booking_id", req.ID),
			slog.String("room_id", req.RoomID),
			slog.String("error", err.Error()),
		)
		return errs.WithSecondaryError(cause, errs.Wrap(err, "release room"))
	}
	return cause
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) error {
	req, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if req.IsAllocated() {
		if err := s.rooms.ReleaseRoom(ctx, req.RoomID); err != nil {
			return errs.Wrap(err, "release room")
		}
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return errs.Wrap(toBookingErr(err), "delete booking")
	}

	s.logger.Info("booking canceled",
		slog.String("booking_id", bookingID),
		slog.String("room_id", req.RoomID),
	)
	return nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (booking.BookingRequest, error) {
	req, err := s.bookings.Get(ctx, bookingID)
	if err != nil {
		return booking.BookingRequest{}, errs.Wrap(toBookingErr(err), "get booking")
	}
	return req, nil
}

// toBookingErr tags repository NOT_FOUND errors with the domain sentinel.
func toBookingErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, booking.ErrBookingNotFound)
	}
	return err
}
