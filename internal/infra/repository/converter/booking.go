package converter

import (
	"fmt"
	"math"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// BookingRow mirrors the bookings table.
type BookingRow struct {
	ID        string
	RoomID    pgtype.Text
	CheckIn   pgtype.Date
	CheckOut  pgtype.Date
	RoomCount int32
	Prepaid   bool
}

func BookingToInfra(req booking.BookingRequest) (BookingRow, error) {
	if req.RoomCount > math.MaxInt32 || req.RoomCount < math.MinInt32 {
		return BookingRow{}, fmt.Errorf("room count out of int32 range: %d", req.RoomCount)
	}

	return BookingRow{
		ID:        req.ID,
		RoomID:    pgconv.TextToPgtype(req.RoomID),
		CheckIn:   pgconv.DateToPgtype(req.CheckIn),
		CheckOut:  pgconv.DateToPgtype(req.CheckOut),
		RoomCount: int32(req.RoomCount),
		Prepaid:   req.Prepaid,
	}, nil
}

func BookingToDomain(row BookingRow) booking.BookingRequest {
	return booking.BookingRequest{
		ID:        row.ID,
		CheckIn:   pgconv.DateFromPgtype(row.CheckIn),
		CheckOut:  pgconv.DateFromPgtype(row.CheckOut),
		RoomCount: int(row.RoomCount),
		Prepaid:   row.Prepaid,
		RoomID:    pgconv.TextFromPgtype(row.RoomID),
	}
}
