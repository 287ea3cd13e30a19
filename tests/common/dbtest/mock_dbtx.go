package dbtest

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockDBTX is a testify mock satisfying db.DBTX.
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// Tag builds a command tag reporting n affected rows.
func Tag(command string, n int64) pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("%s %d", command, n))
}

// FakeRow scans fixed values into destinations of the same type.
type FakeRow struct {
	Values []any
	Err    error
}

func (r FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

// FakeRows iterates over a fixed result set.
type FakeRows struct {
	Data    [][]any
	IterErr error
	pos     int
	closed  bool
}

func NewFakeRows(data ...[]any) *FakeRows {
	return &FakeRows{Data: data}
}

func (r *FakeRows) Close()                                       { r.closed = true }
func (r *FakeRows) Err() error                                   { return r.IterErr }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return Tag("SELECT", int64(len(r.Data))) }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }
func (r *FakeRows) Closed() bool                                 { return r.closed }

func (r *FakeRows) Next() bool {
	if r.closed || r.pos >= len(r.Data) {
		return false
	}
	r.pos++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	return assign(r.Data[r.pos-1], dest)
}

func (r *FakeRows) Values() ([]any, error) {
	return r.Data[r.pos-1], nil
}

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: expected %d destinations, got %d", len(values), len(dest))
	}
	for i, v := range values {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		sv := reflect.ValueOf(v)
		if !sv.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("scan: cannot assign %s to %s", sv.Type(), dv.Elem().Type())
		}
		dv.Elem().Set(sv)
	}
	return nil
}
