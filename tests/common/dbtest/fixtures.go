package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type SeedRoom struct {
	ID       string
	Name     string
	Capacity int
}

// DefaultRooms mirrors the rows seeded by the initial migration.
var DefaultRooms = []SeedRoom{
	{ID: "1.1", Name: "Room 1.1", Capacity: 2},
	{ID: "1.2", Name: "Room 1.2", Capacity: 2},
	{ID: "1.3", Name: "Room 1.3", Capacity: 5},
	{ID: "2.1", Name: "Room 2.1", Capacity: 3},
	{ID: "2.2", Name: "Room 2.2", Capacity: 5},
}

func DefaultCapacity() int {
	total := 0
	for _, r := range DefaultRooms {
		total += r.Capacity
	}
	return total
}

func CreateTestRoom(t *testing.T, db DBLike, room SeedRoom) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, capacity) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET is_available = TRUE",
		room.ID, room.Name, room.Capacity)
	require.NoError(t, err)
}

// OccupyAllRooms marks every room unavailable.
func OccupyAllRooms(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE rooms SET is_available = FALSE")
	require.NoError(t, err)
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedReferenceData inserts the default rooms.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	for _, r := range DefaultRooms {
		if _, err := pool.Exec(ctx,
			"INSERT INTO rooms (id, name, capacity) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
			r.ID, r.Name, r.Capacity); err != nil {
			return err
		}
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
