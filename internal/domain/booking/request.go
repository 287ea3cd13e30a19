package booking

import (
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// BookingRequest describes a prospective or confirmed stay.
// RoomID stays empty until a room has been allocated.
type BookingRequest struct {
	ID        string
	CheckIn   time.Time
	CheckOut  time.Time
	RoomCount int
	Prepaid   bool
	RoomID    string
}

func NewBookingRequest(id string, checkIn, checkOut time.Time, roomCount int, prepaid bool) (BookingRequest, error) {
	checkIn = DateOf(checkIn)
	checkOut = DateOf(checkOut)

	if !checkOut.After(checkIn) {
		return BookingRequest{}, ErrInvalidStayDates
	}
	if roomCount < 1 {
		return BookingRequest{}, ErrInvalidRoomCount
	}

	return BookingRequest{
		ID:        id,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		RoomCount: roomCount,
		Prepaid:   prepaid,
	}, nil
}

// Nights counts whole calendar days between check-in and check-out.
func (r BookingRequest) Nights() int {
	d := DateOf(r.CheckOut).Sub(DateOf(r.CheckIn))
	return int(math.Round(d.Hours() / 24))
}

// WithRoomID returns a copy of the request carrying the allocated room.
func (r BookingRequest) WithRoomID(roomID string) BookingRequest {
	r.RoomID = roomID
	return r
}

func (r BookingRequest) WithID(id string) BookingRequest {
	r.ID = id
	return r
}

func (r BookingRequest) IsAllocated() bool {
	return r.RoomID != ""
}

// Date builds a calendar date in UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf drops the clock part of t, keeping its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
