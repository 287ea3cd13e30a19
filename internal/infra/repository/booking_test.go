package repository

import (
	"context"
	"errors"
	"testing"

	"happy-hotel/internal/domain/booking"
	"happy-hotel/internal/infra"
	"happy-hotel/internal/pkg/pgconv"
	"happy-hotel/tests/common/builder"
	"happy-hotel/tests/common/dbtest"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBookingRepositorySave(t *testing.T) {
	req := builder.NewBookingBuilder().WithPrepaid(true).WithRoomID("1.3").Build()

	tests := []struct {
		name     string
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "unknown room", execErr: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", execErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(dbtest.MockDBTX)
			mockDB.On("Exec", mock.Anything, saveBookingSQL, mock.MatchedBy(func(args []any) bool {
				return len(args) == 6 && args[0] == "1" && args[1] == pgconv.TextToPgtype("1.3") && args[5] == true
			})).Return(dbtest.Tag("INSERT", 1), tt.execErr)

			err := NewBookingRepository(mockDB).Save(context.Background(), req)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockDB.AssertExpectations(t)
		})
	}
}

func TestBookingRepositoryGet(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("QueryRow", mock.Anything, getBookingSQL, []any{"1"}).Return(dbtest.FakeRow{Values: []any{
			"1",
			pgconv.TextToPgtype("1.3"),
			pgconv.DateToPgtype(booking.Date(2022, 1, 1)),
			pgconv.DateToPgtype(booking.Date(2022, 1, 5)),
			int32(2),
			true,
		}})

		actual, err := NewBookingRepository(mockDB).Get(context.Background(), "1")
		require.NoError(t, err)

		expected := builder.NewBookingBuilder().WithPrepaid(true).WithRoomID("1.3").Build()
		assert.Equal(t, expected, actual)
	})

	t.Run("not found", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("QueryRow", mock.Anything, getBookingSQL, []any{"missing"}).Return(dbtest.FakeRow{Err: pgx.ErrNoRows})

		_, err := NewBookingRepository(mockDB).Get(context.Background(), "missing")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database error", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("QueryRow", mock.Anything, getBookingSQL, []any{"1"}).Return(dbtest.FakeRow{Err: errors.New("timeout")})

		_, err := NewBookingRepository(mockDB).Get(context.Background(), "1")
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("NULL room", func(t *testing.T) {
		mockDB := new(dbtest.MockDBTX)
		mockDB.On("QueryRow", mock.Anything, getBookingSQL, []any{"2"}).Return(dbtest.FakeRow{Values: []any{
			"2",
			pgtype.Text{},
			pgconv.DateToPgtype(booking.Date(2022, 1, 1)),
			pgconv.DateToPgtype(booking.Date(2022, 1, 3)),
			int32(1),
			false,
		}})

		actual, err := NewBookingRepository(mockDB).Get(context.Background(), "2")
		require.NoError(t, err)
		assert.False(t, actual.IsAllocated())
		assert.Equal(t, 2, actual.Nights())
	})
}

func TestBookingRepositoryDelete(t *testing.T) {
	tests := []struct {
		name     string
		tag      pgconn.CommandTag
		execErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", tag: dbtest.Tag("DELETE", 1)},
		{name: "not found", tag: dbtest.Tag("DELETE", 0), wantKind: infra.KindNotFound},
		{name: "database error", tag: pgconn.CommandTag{}, execErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := new(dbtest.MockDBTX)
			mockDB.On("Exec", mock.Anything, deleteBookingSQL, []any{"1"}).Return(tt.tag, tt.execErr)

			err := NewBookingRepository(mockDB).Delete(context.Background(), "1")

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockDB.AssertExpectations(t)
		})
	}
}
