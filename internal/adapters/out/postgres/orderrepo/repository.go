package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// AcceptPending and Assign re-check the lifecycle preconditions inside the
// UPDATE's WHERE clause. Under concurrency exactly one such statement can
// match the row; everyone else sees zero affected rows and gets a conflict.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AcceptPending atomically claims a pending mobile-delivery order for a
// courier. The WHERE clause is the authority on the race: of two concurrent
// claims only one statement matches the unassigned pending row.
func (r *GormOrderRepository) AcceptPending(ctx context.Context, orderID, courierID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET courier_id = ?, status = 'in_progress', updated_at = NOW()
		WHERE id = ?
		  AND courier_id IS NULL
		  AND status = 'pending'
		  AND mobile_delivery
	`, courierID.Bytes(), orderID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order is no longer available for acceptance")
	}

	return nil
}

// Assign atomically places a courier on a non-terminal order. A pending
// order moves to in_progress; any other non-terminal status is preserved.
// Overwriting an existing courier is allowed.
func (r *GormOrderRepository) Assign(ctx context.Context, orderID, courierID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET courier_id = ?,
		    status = CASE WHEN status = 'pending' THEN 'in_progress' ELSE status END,
		    updated_at = NOW()
		WHERE id = ?
		  AND status NOT IN ('delivered', 'cancelled')
	`, courierID.Bytes(), orderID.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order can no longer be assigned")
	}

	return nil
}
