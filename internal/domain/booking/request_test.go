package booking_test

import (
	"testing"
	"time"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBookingRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		expected := booking.BookingRequest{
			ID:        "1",
			CheckIn:   booking.Date(2022, time.January, 1),
			CheckOut:  booking.Date(2022, time.January, 5),
			RoomCount: 2,
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("BookingRequest mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 4, actual.Nights())
		assert.False(t, actual.IsAllocated())
	})

	t.Run("stay validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name: "single night",
				mutate: func(b *builder.BookingBuilder) {
					b.WithStay(booking.Date(2022, time.January, 1), booking.Date(2022, time.January, 2))
				},
			},
			{
				name: "check-out equals check-in",
				mutate: func(b *builder.BookingBuilder) {
					b.WithStay(booking.Date(2022, time.January, 1), booking.Date(2022, time.January, 1))
				},
				errIs: booking.ErrInvalidStayDates,
			},
			{
				name: "check-out before check-in",
				mutate: func(b *builder.BookingBuilder) {
					b.WithStay(booking.Date(2022, time.January, 5), booking.Date(2022, time.January, 1))
				},
				errIs: booking.ErrInvalidStayDates,
			},
			{
				name: "same day with different clock times",
				mutate: func(b *builder.BookingBuilder) {
					b.WithStay(
						time.Date(2022, time.January, 1, 8, 0, 0, 0, time.UTC),
						time.Date(2022, time.January, 1, 22, 0, 0, 0, time.UTC),
					)
				},
				errIs: booking.ErrInvalidStayDates,
			},
		})
	})

	t.Run("room count validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "one room", mutate: func(b *builder.BookingBuilder) { b.WithRoomCount(1) }},
			{name: "zero rooms", mutate: func(b *builder.BookingBuilder) { b.WithRoomCount(0) }, errIs: booking.ErrInvalidRoomCount},
			{name: "negative rooms", mutate: func(b *builder.BookingBuilder) { b.WithRoomCount(-2) }, errIs: booking.ErrInvalidRoomCount},
		})
	})

	t.Run("room assignment returns a copy", func(t *testing.T) {
		original, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		allocated := original.WithRoomID("1.3")

		assert.Equal(t, "1.3", allocated.RoomID)
		assert.True(t, allocated.IsAllocated())
		assert.Empty(t, original.RoomID)
	})

	t.Run("nights ignore clock time", func(t *testing.T) {
		req := builder.NewBookingBuilder().
			WithStay(
				time.Date(2022, time.March, 26, 23, 0, 0, 0, time.UTC),
				time.Date(2022, time.March, 28, 1, 0, 0, 0, time.UTC),
			).Build()

		assert.Equal(t, 2, req.Nights())
	})
}

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2022-01-05")
	require.NoError(t, err)
	assert.Equal(t, booking.Date(2022, time.January, 5), d)

	_, err = booking.ParseDate("05/01/2022")
	assert.Error(t, err)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
