package notification

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/pkg/clock"
	"happy-hotel/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	KindEmail             = "email"
	TopicBookingConfirmed = "booking_confirmed"
)

type JobWriter interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
}

type BookingConfirmation struct {
	BookingID string `json:"booking_id"`
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Nights    int    `json:"nights"`
	RoomCount int    `json:"room_count"`
	Prepaid   bool   `json:"prepaid"`
}

func NewBookingConfirmation(req booking.BookingRequest) BookingConfirmation {
	return BookingConfirmation{
		BookingID: req.ID,
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn.Format(booking.DateLayout),
		CheckOut:  req.CheckOut.Format(booking.DateLayout),
		Nights:    req.Nights(),
		RoomCount: req.RoomCount,
		Prepaid:   req.Prepaid,
	}
}

// MailSender queues confirmation e-mails in the notification outbox;
// delivery happens outside this process.
type MailSender struct {
	jobs  JobWriter
	clock clock.Clock
}

func NewMailSender(jobs JobWriter, clock clock.Clock) *MailSender {
	return &MailSender{jobs: jobs, clock: clock}
}

func (s *MailSender) SendBookingConfirmation(ctx context.Context, req booking.BookingRequest) error {
	payload, err := json.Marshal(NewBookingConfirmation(req))
	if err != nil {
		return errs.Mark(err, booking.ErrNotificationFailed)
	}

	jobID, err := s.jobs.CreateJob(ctx, KindEmail, TopicBookingConfirmed, payload, s.clock.Now())
	if err != nil {
		return errs.Mark(err, booking.ErrNotificationFailed)
	}

	slog.Debug("booking confirmation queued",
		slog.String("booking_id", req.ID),
		slog.String("job_id", jobID.String()),
	)
	return nil
}
