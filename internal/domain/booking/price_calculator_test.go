package booking_test

import (
	"testing"
	"time"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPriceCalculator(t *testing.T) {
	calc := booking.NewDefaultPriceCalculator()

	tests := []struct {
		name     string
		req      booking.BookingRequest
		expected float64
	}{
		{
			name:     "four nights two rooms",
			req:      builder.NewBookingBuilder().Build(),
			expected: 4 * 2 * 50.0,
		},
		{
			name: "two nights one room",
			req: builder.NewBookingBuilder().
				WithStay(booking.Date(2022, time.January, 1), booking.Date(2022, time.January, 3)).
				WithRoomCount(1).
				Build(),
			expected: 100.0,
		},
		{
			name: "stay across month end",
			req: builder.NewBookingBuilder().
				WithStay(booking.Date(2022, time.January, 30), booking.Date(2022, time.February, 2)).
				WithRoomCount(3).
				Build(),
			expected: 3 * 3 * 50.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.CalculatePrice(tt.req))
		})
	}
}

func TestNewPriceCalculatorWithRate(t *testing.T) {
	req := builder.NewBookingBuilder().Build()

	assert.Equal(t, 800.0, booking.NewPriceCalculatorWithRate(100).CalculatePrice(req))
	assert.Equal(t, 400.0, booking.NewPriceCalculatorWithRate(0).CalculatePrice(req))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(40000), booking.MinorUnits(400.0))
	assert.Equal(t, int64(32000), booking.MinorUnits(320.0))
	assert.Equal(t, int64(1999), booking.MinorUnits(19.99))
}

func TestTotalCapacity(t *testing.T) {
	assert.Equal(t, 0, booking.TotalCapacity(nil))
	assert.Equal(t, 10, booking.TotalCapacity([]booking.Room{
		booking.NewRoom("1.1", "Room 1", 5),
		booking.NewRoom("1.2", "Room 1", 5),
	}))
}
