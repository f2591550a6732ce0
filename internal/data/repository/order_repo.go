package repository

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.ServiceOrder) (*entity.ServiceOrder, error)
	FindAllExtended(ctx context.Context) ([]*entity.ServiceOrderExtended, error)
	FindExtendedByID(ctx context.Context, id int64) (*entity.ServiceOrderExtended, error)
	FindExtendedByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.ServiceOrderExtended, error)
	FindExtendedByWorkStatus(ctx context.Context, status entity.WorkStatus) ([]*entity.ServiceOrderExtended, error)
	UpdatePartial(ctx context.Context, id int64, patch entity.ServiceOrderPatch) (*entity.ServiceOrder, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// extendedSelect joins the four referenced tables in one read so the extended
// projection always reflects their current rows.
const extendedSelect = `
	SELECT o.so_id, o.s_customer_id, o.s_hostel_id, o.s_package_id, o.s_users_id,
	       o.so_time_slot, o.so_work_status, o.so_payment_status,
	       o.created_at, o.updated_at,
	       c.sc_id, c.sc_name, c.sc_email, c.sc_phone, c.sc_number_plate, c.sc_brand_model,
	       p.sp_id, p.sp_name, p.sp_code, p.sp_price, p.sp_description,
	       h.sh_id, h.sh_name,
	       u.su_id, u.su_email, u.su_type, u.su_is_approve
	FROM service_order o
	JOIN service_customers c ON c.sc_id = o.s_customer_id
	JOIN packages p ON p.sp_id = o.s_package_id
	JOIN hostels h ON h.sh_id = o.s_hostel_id
	JOIN service_users u ON u.su_id = o.s_users_id
`

func scanExtended(row pgx.Row) (*entity.ServiceOrderExtended, error) {
	var ext entity.ServiceOrderExtended
	err := row.Scan(
		&ext.ID,
		&ext.CustomerID,
		&ext.HostelID,
		&ext.PackageID,
		&ext.UserID,
		&ext.TimeSlot,
		&ext.WorkStatus,
		&ext.PaymentStatus,
		&ext.CreatedAt,
		&ext.UpdatedAt,
		&ext.Customer.ID,
		&ext.Customer.Name,
		&ext.Customer.Email,
		&ext.Customer.Phone,
		&ext.Customer.NumberPlate,
		&ext.Customer.BrandModel,
		&ext.Package.ID,
		&ext.Package.Name,
		&ext.Package.Code,
		&ext.Package.Price,
		&ext.Package.Description,
		&ext.Hostel.ID,
		&ext.Hostel.Name,
		&ext.AssignedUser.ID,
		&ext.AssignedUser.Email,
		&ext.AssignedUser.Type,
		&ext.AssignedUser.IsApproved,
	)
	if err != nil {
		return nil, err
	}
	return &ext, nil
}

func (r *orderRepository) Create(ctx context.Context, order *entity.ServiceOrder) (*entity.ServiceOrder, error) {
	query := `
		INSERT INTO service_order (s_customer_id, s_hostel_id, s_package_id, s_users_id,
		                           so_time_slot, so_work_status, so_payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING so_id, created_at, updated_at
	`

	created := *order
	err := r.db.QueryRow(ctx, query,
		order.CustomerID,
		order.HostelID,
		order.PackageID,
		order.UserID,
		order.TimeSlot,
		order.WorkStatus,
		order.PaymentStatus,
	).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("customer_id", order.CustomerID),
			zap.Int64("package_id", order.PackageID),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	return &created, nil
}

func (r *orderRepository) FindAllExtended(ctx context.Context) ([]*entity.ServiceOrderExtended, error) {
	query := extendedSelect + ` ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find orders", zap.Error(err))
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer rows.Close()

	return collectExtended(rows)
}

func (r *orderRepository) FindExtendedByID(ctx context.Context, id int64) (*entity.ServiceOrderExtended, error) {
	query := extendedSelect + ` WHERE o.so_id = $1`

	ext, err := scanExtended(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	return ext, nil
}

func (r *orderRepository) FindExtendedByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]*entity.ServiceOrderExtended, error) {
	query := extendedSelect + ` WHERE o.so_payment_status = $1 ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find orders by payment status",
			zap.Error(err),
			zap.String("payment_status", string(status)),
		)
		return nil, fmt.Errorf("find orders by payment status %s: %w", string(status), err)
	}
	defer rows.Close()

	return collectExtended(rows)
}

func (r *orderRepository) FindExtendedByWorkStatus(ctx context.Context, status entity.WorkStatus) ([]*entity.ServiceOrderExtended, error) {
	query := extendedSelect + ` WHERE o.so_work_status = $1 ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find orders by work status",
			zap.Error(err),
			zap.String("work_status", string(status)),
		)
		return nil, fmt.Errorf("find orders by work status %s: %w", string(status), err)
	}
	defer rows.Close()

	return collectExtended(rows)
}

// UpdatePartial touches only the non-nil patch fields. COALESCE keeps the
// stored value wherever the caller sent nothing.
func (r *orderRepository) UpdatePartial(ctx context.Context, id int64, patch entity.ServiceOrderPatch) (*entity.ServiceOrder, error) {
	query := `
		UPDATE service_order
		SET so_work_status    = COALESCE($2, so_work_status),
		    so_payment_status = COALESCE($3, so_payment_status),
		    so_time_slot      = COALESCE($4, so_time_slot),
		    updated_at        = NOW()
		WHERE so_id = $1
		RETURNING so_id, s_customer_id, s_hostel_id, s_package_id, s_users_id,
		          so_time_slot, so_work_status, so_payment_status, created_at, updated_at
	`

	var order entity.ServiceOrder
	err := r.db.QueryRow(ctx, query, id, patch.WorkStatus, patch.PaymentStatus, patch.TimeSlot).Scan(
		&order.ID,
		&order.CustomerID,
		&order.HostelID,
		&order.PackageID,
		&order.UserID,
		&order.TimeSlot,
		&order.WorkStatus,
		&order.PaymentStatus,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("update order %d: %w", id, err)
	}

	return &order, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM service_order WHERE so_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return false, fmt.Errorf("delete order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	r.log.Info("Order deleted", zap.Int64("order_id", id))
	return true, nil
}

func collectExtended(rows pgx.Rows) ([]*entity.ServiceOrderExtended, error) {
	var orders []*entity.ServiceOrderExtended
	for rows.Next() {
		ext, err := scanExtended(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, ext)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}
