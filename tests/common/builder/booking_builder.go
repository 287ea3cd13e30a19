package builder

import (
	"time"

	"happy-hotel/internal/domain/booking"
	reqdto "happy-hotel/internal/handler/dto/request"
)

type BookingBuilder struct {
	ID        string
	CheckIn   time.Time
	CheckOut  time.Time
	RoomCount int
	Prepaid   bool
	RoomID    string
}

// Defaults to a four-night stay in two rooms, 400.0 at the default rate.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        "1",
		CheckIn:   booking.Date(2022, time.January, 1),
		CheckOut:  booking.Date(2022, time.January, 5),
		RoomCount: 2,
		Prepaid:   false,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithRoomCount(n int) *BookingBuilder {
	b.RoomCount = n
	return b
}

func (b *BookingBuilder) WithPrepaid(prepaid bool) *BookingBuilder {
	b.Prepaid = prepaid
	return b
}

func (b *BookingBuilder) WithRoomID(roomID string) *BookingBuilder {
	b.RoomID = roomID
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (booking.BookingRequest, error) {
	req, err := booking.NewBookingRequest(b.ID, b.CheckIn, b.CheckOut, b.RoomCount, b.Prepaid)
	if err != nil {
		return booking.BookingRequest{}, err
	}
	return req.WithRoomID(b.RoomID), nil
}

// Build skips validation so tests can hand invalid values to lower layers.
func (b *BookingBuilder) Build() booking.BookingRequest {
	return booking.BookingRequest{
		ID:        b.ID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		RoomCount: b.RoomCount,
		Prepaid:   b.Prepaid,
		RoomID:    b.RoomID,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ID:        b.ID,
		CheckIn:   b.CheckIn.Format(booking.DateLayout),
		CheckOut:  b.CheckOut.Format(booking.DateLayout),
		RoomCount: b.RoomCount,
		Prepaid:   b.Prepaid,
	}
}
