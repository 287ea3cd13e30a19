package request

import (
	"strings"

	"happy-hotel/internal/domain/booking"
)

type CreateBookingRequest struct {
	ID        string `json:"id,omitempty" binding:"omitempty,max=64"`
	CheckIn   string `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut  string `json:"checkOut" binding:"required,datetime=2006-01-02"`
	RoomCount int    `json:"roomCount" binding:"required,min=1"`
	Prepaid   bool   `json:"prepaid"`
}

func (r CreateBookingRequest) ToDomain() (booking.BookingRequest, error) {
	checkIn, err := booking.ParseDate(r.CheckIn)
	if err != nil {
		return booking.BookingRequest{}, err
	}
	checkOut, err := booking.ParseDate(r.CheckOut)
	if err != nil {
		return booking.BookingRequest{}, err
	}
	return booking.NewBookingRequest(strings.TrimSpace(r.ID), checkIn, checkOut, r.RoomCount, r.Prepaid)
}

type QuoteRequest struct {
	CheckIn   string `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut  string `json:"checkOut" binding:"required,datetime=2006-01-02"`
	RoomCount int    `json:"roomCount" binding:"required,min=1"`
}

func (r QuoteRequest) ToDomain() (booking.BookingRequest, error) {
	return CreateBookingRequest{
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		RoomCount: r.RoomCount,
	}.ToDomain()
}
