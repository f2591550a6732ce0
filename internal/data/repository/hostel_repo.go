package repository

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HostelRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Hostel, error)
	FindAll(ctx context.Context) ([]*entity.Hostel, error)
}

type hostelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHostelRepository(db database.PgxIface, log *zap.Logger) HostelRepository {
	return &hostelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hostel")),
	}
}

func (r *hostelRepository) FindByID(ctx context.Context, id int64) (*entity.Hostel, error) {
	query := `SELECT sh_id, sh_name FROM hostels WHERE sh_id = $1`

	var hostel entity.Hostel
	err := r.db.QueryRow(ctx, query, id).Scan(&hostel.ID, &hostel.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hostel by ID",
			zap.Error(err),
			zap.Int64("hostel_id", id),
		)
		return nil, fmt.Errorf("find hostel by ID %d: %w", id, err)
	}

	return &hostel, nil
}

func (r *hostelRepository) FindAll(ctx context.Context) ([]*entity.Hostel, error) {
	query := `SELECT sh_id, sh_name FROM hostels ORDER BY sh_name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find hostels", zap.Error(err))
		return nil, fmt.Errorf("find hostels: %w", err)
	}
	defer rows.Close()

	var hostels []*entity.Hostel
	for rows.Next() {
		var hostel entity.Hostel
		if err := rows.Scan(&hostel.ID, &hostel.Name); err != nil {
			r.log.Error("Failed to scan hostel row", zap.Error(err))
			return nil, fmt.Errorf("scan hostel row: %w", err)
		}
		hostels = append(hostels, &hostel)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate hostel rows", zap.Error(err))
		return nil, fmt.Errorf("iterate hostel rows: %w", err)
	}

	return hostels, nil
}
