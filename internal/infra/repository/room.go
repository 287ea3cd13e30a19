package repository

import (
	"context"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/infra"
	"happy-hotel/internal/infra/db"
	"happy-hotel/internal/pkg/errs"
	"happy-hotel/internal/pkg/pgconv"
)

const (
	availableRoomsSQL = `
SELECT id, name, capacity
FROM rooms
WHERE is_available
ORDER BY id`

	// Claims the first free room in one statement; SKIP LOCKED keeps
	// concurrent allocations from handing out the same room.
	allocateRoomSQL = `
UPDATE rooms
SET is_available = FALSE, updated_at = now()
WHERE id = (
    SELECT id FROM rooms
    WHERE is_available
    ORDER BY id
    LIMIT 1
    FOR UPDATE SKIP LOCKED
)
RETURNING id`

	releaseRoomSQL = `
UPDATE rooms
SET is_available = TRUE, updated_at = now()
WHERE id = $1`
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(db db.DBTX) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetAvailableRooms(ctx context.Context) ([]booking.Room, error) {
	rows, err := r.db.Query(ctx, availableRoomsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available rooms", err)
	}
	defer rows.Close()

	var rooms []booking.Room
	for rows.Next() {
		var (
			id, name string
			capacity int32
		)
		if err := rows.Scan(&id, &name, &capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room", err)
		}
		rooms = append(rooms, booking.NewRoom(id, name, int(capacity)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}

	return rooms, nil
}

// FindAvailableRoomID claims exactly one room per booking. The stay dates and
// RoomCount of the request do not influence which room, or how many, is taken.
func (r *RoomRepository) FindAvailableRoomID(ctx context.Context, _ booking.BookingRequest) (string, error) {
	var roomID string
	if err := r.db.QueryRow(ctx, allocateRoomSQL).Scan(&roomID); err != nil {
		if pgconv.IsNoRows(err) {
			return "", errs.Mark(infra.WrapRepoErr("no room available", err, infra.KindNotFound), booking.ErrNoRoomAvailable)
		}
		return "", infra.WrapRepoErr("failed to allocate room", err)
	}
	return roomID, nil
}

func (r *RoomRepository) ReleaseRoom(ctx context.Context, roomID string) error {
	tag, err := r.db.Exec(ctx, releaseRoomSQL, roomID)
	if err != nil {
		return infra.WrapRepoErr("failed to release room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}
