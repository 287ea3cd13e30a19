package response

import (
	"happy-hotel/internal/domain/booking"
)

type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId,omitempty"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Nights    int    `json:"nights"`
	RoomCount int    `json:"roomCount"`
	Prepaid   bool   `json:"prepaid"`
}

type CreateBookingResponse struct {
	ID string `json:"id"`
}

type QuoteResponse struct {
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	ForeignPrice    float64 `json:"foreignPrice"`
	ForeignCurrency string  `json:"foreignCurrency"`
}

type AvailabilityResponse struct {
	AvailablePlaces int `json:"availablePlaces"`
}

func FromBooking(req booking.BookingRequest) *BookingResponse {
	return &BookingResponse{
		ID:        req.ID,
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn.Format(booking.DateLayout),
		CheckOut:  req.CheckOut.Format(booking.DateLayout),
		Nights:    req.Nights(),
		RoomCount: req.RoomCount,
		Prepaid:   req.Prepaid,
	}
}
