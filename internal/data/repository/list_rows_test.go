package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"service-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStream = errors.New("connection reset mid-stream")

// fakeRows serves a fixed set of rows, then reports a stream error the way
// pgx does when the connection drops while results are still being read.
type fakeRows struct {
	scans []func(dest ...any)
	pos   int
	err   error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.scans) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	r.scans[r.pos-1](dest...)
	return nil
}

func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) Close()                                       {}
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

type fakeDB struct {
	rows pgx.Rows
}

func (db *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) { return db.rows, nil }
func (db *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }
func (db *fakeDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (db *fakeDB) Begin(context.Context) (pgx.Tx, error) { return nil, nil }
func (db *fakeDB) Ping(context.Context) error            { return nil }
func (db *fakeDB) Close()                                {}

func TestHostelFindAllSurfacesStreamError(t *testing.T) {
	rows := &fakeRows{
		scans: []func(dest ...any){
			func(dest ...any) {
				*(dest[0].(*int64)) = 1
				*(dest[1].(*string)) = "Hostel A"
			},
		},
		err: errStream,
	}
	repo := NewHostelRepository(&fakeDB{rows: rows}, zap.NewNop())

	hostels, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStream)
	assert.Nil(t, hostels)
}

func TestPackageFindAllSurfacesStreamError(t *testing.T) {
	rows := &fakeRows{
		scans: []func(dest ...any){
			func(dest ...any) {
				*(dest[0].(*int64)) = 1
				*(dest[1].(*string)) = "Daily Use Package"
				*(dest[2].(*string)) = entity.PackageCodeDaily
				*(dest[3].(*decimal.Decimal)) = decimal.NewFromInt(80)
				*(dest[4].(*string)) = "Routine service"
			},
		},
		err: errStream,
	}
	repo := NewPackageRepository(&fakeDB{rows: rows}, zap.NewNop())

	packages, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStream)
	assert.Nil(t, packages)
}

func TestCustomerFindAllSurfacesStreamError(t *testing.T) {
	rows := &fakeRows{
		scans: []func(dest ...any){
			func(dest ...any) {
				*(dest[0].(*int64)) = 1
				*(dest[1].(*string)) = "Ahmad Fauzi"
				*(dest[2].(*string)) = "ahmad@example.com"
				*(dest[3].(*string)) = "0123456789"
				*(dest[4].(*string)) = "WXY 1234"
				*(dest[5].(*string)) = "Honda Civic"
				*(dest[6].(*time.Time)) = time.Now()
			},
		},
		err: errStream,
	}
	repo := NewCustomerRepository(&fakeDB{rows: rows}, zap.NewNop())

	customers, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStream)
	assert.Nil(t, customers)
}

func TestUserFindAllSurfacesStreamError(t *testing.T) {
	rows := &fakeRows{
		scans: []func(dest ...any){
			func(dest ...any) {
				*(dest[0].(*uuid.UUID)) = uuid.New()
				*(dest[1].(*string)) = "admin@faisal-service.app"
				*(dest[2].(*string)) = "hashed"
				*(dest[3].(*entity.UserType)) = entity.UserTypeAdmin
				*(dest[4].(*bool)) = true
				*(dest[5].(*time.Time)) = time.Now()
				*(dest[6].(*time.Time)) = time.Now()
			},
		},
		err: errStream,
	}
	repo := NewUserRepository(&fakeDB{rows: rows}, zap.NewNop())

	users, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errStream)
	assert.Nil(t, users)
}
