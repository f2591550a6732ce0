package repository

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Package, error)
	FindByCode(ctx context.Context, code string) (*entity.Package, error)
	FindAll(ctx context.Context) ([]*entity.Package, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

func (r *packageRepository) FindByID(ctx context.Context, id int64) (*entity.Package, error) {
	query := `
		SELECT sp_id, sp_name, sp_code, sp_price, sp_description
		FROM packages
		WHERE sp_id = $1
	`

	var pkg entity.Package
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Code,
		&pkg.Price,
		&pkg.Description,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.Int64("package_id", id),
		)
		return nil, fmt.Errorf("find package by ID %d: %w", id, err)
	}

	return &pkg, nil
}

func (r *packageRepository) FindByCode(ctx context.Context, code string) (*entity.Package, error) {
	query := `
		SELECT sp_id, sp_name, sp_code, sp_price, sp_description
		FROM packages
		WHERE sp_code = $1
	`

	var pkg entity.Package
	err := r.db.QueryRow(ctx, query, code).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Code,
		&pkg.Price,
		&pkg.Description,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find package by code %s: %w", code, err)
	}

	return &pkg, nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	query := `
		SELECT sp_id, sp_name, sp_code, sp_price, sp_description
		FROM packages
		ORDER BY sp_id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find packages", zap.Error(err))
		return nil, fmt.Errorf("find packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		var pkg entity.Package
		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Code,
			&pkg.Price,
			&pkg.Description,
		)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate package rows", zap.Error(err))
		return nil, fmt.Errorf("iterate package rows: %w", err)
	}

	return packages, nil
}
