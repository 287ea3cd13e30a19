package repository

import (
	"context"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/infra"
	"happy-hotel/internal/infra/db"
	"happy-hotel/internal/infra/repository/converter"
	"happy-hotel/internal/pkg/pgconv"
)

const (
	saveBookingSQL = `
INSERT INTO bookings (id, room_id, check_in, check_out, room_count, prepaid)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    room_id    = EXCLUDED.room_id,
    check_in   = EXCLUDED.check_in,
    check_out  = EXCLUDED.check_out,
    room_count = EXCLUDED.room_count,
    prepaid    = EXCLUDED.prepaid,
    updated_at = now()`

	getBookingSQL = `
SELECT id, room_id, check_in, check_out, room_count, prepaid
FROM bookings
WHERE id = $1`

	deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// Save upserts by booking id, so saving the same request twice is a no-op.
func (r *BookingRepository) Save(ctx context.Context, req booking.BookingRequest) error {
	row, err := converter.BookingToInfra(req)
	if err != nil {
		return infra.WrapRepoErr("invalid booking", err)
	}

	_, err = r.db.Exec(ctx, saveBookingSQL,
		row.ID, row.RoomID, row.CheckIn, row.CheckOut, row.RoomCount, row.Prepaid,
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("booking references unknown room", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to save booking", err)
	}
	return nil
}

func (r *BookingRepository) Get(ctx context.Context, id string) (booking.BookingRequest, error) {
	var row converter.BookingRow
	err := r.db.QueryRow(ctx, getBookingSQL, id).Scan(
		&row.ID, &row.RoomID, &row.CheckIn, &row.CheckOut, &row.RoomCount, &row.Prepaid,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.BookingRequest{}, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return booking.BookingRequest{}, infra.WrapRepoErr("failed to get booking", err)
	}

	return converter.BookingToDomain(row), nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
