package repository

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.ServiceUser) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceUser, error)
	FindByEmail(ctx context.Context, email string) (*entity.ServiceUser, error)
	FindAll(ctx context.Context) ([]*entity.ServiceUser, error)
	SetApproved(ctx context.Context, id uuid.UUID, approved bool) error
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.ServiceUser) error {
	query := `
		INSERT INTO service_users (su_id, su_email, su_password, su_type, su_is_approve, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Type,
		user.IsApproved,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceUser, error) {
	query := `
		SELECT su_id, su_email, su_password, su_type, su_is_approve, created_at, updated_at
		FROM service_users
		WHERE su_id = $1
	`

	var user entity.ServiceUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Type,
		&user.IsApproved,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.ServiceUser, error) {
	query := `
		SELECT su_id, su_email, su_password, su_type, su_is_approve, created_at, updated_at
		FROM service_users
		WHERE su_email = $1
	`

	var user entity.ServiceUser
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Type,
		&user.IsApproved,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]*entity.ServiceUser, error) {
	query := `
		SELECT su_id, su_email, su_password, su_type, su_is_approve, created_at, updated_at
		FROM service_users
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find users", zap.Error(err))
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer rows.Close()

	var users []*entity.ServiceUser
	for rows.Next() {
		var user entity.ServiceUser
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.Type,
			&user.IsApproved,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate user rows", zap.Error(err))
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

func (r *userRepository) SetApproved(ctx context.Context, id uuid.UUID, approved bool) error {
	query := `
		UPDATE service_users
		SET su_is_approve = $2, updated_at = NOW()
		WHERE su_id = $1
	`

	result, err := r.db.Exec(ctx, query, id, approved)
	if err != nil {
		r.log.Error("Failed to set user approval",
			zap.Error(err),
			zap.String("user_id", id.String()),
			zap.Bool("approved", approved),
		)
		return fmt.Errorf("set approval for user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id.String())
	}

	return nil
}
