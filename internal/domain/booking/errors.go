package booking

import "errors"

var (
	ErrNoRoomAvailable    = errors.New("no room available")
	ErrPaymentDeclined    = errors.New("payment declined")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrNotificationFailed = errors.New("booking confirmation could not be sent")
)

var (
	ErrInvalidStayDates = errors.New("check-out date must be after check-in date")
	ErrInvalidRoomCount = errors.New("room count must be at least 1")
)
