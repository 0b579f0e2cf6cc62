package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders straight from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing with the query's filters, newest orders first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			courier_id,
			code,
			object_type,
			company,
			address,
			notes,
			mobile_delivery,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 3)

	if query.CustomerID() != nil {
		sql += " AND customer_id = ?"
		args = append(args, query.CustomerID().Bytes())
	}
	if query.AvailableOnly() {
		sql += " AND courier_id IS NULL AND status = 'pending' AND mobile_delivery"
	} else if query.CourierID() != nil {
		sql += " AND courier_id = ?"
		args = append(args, query.CourierID().Bytes())
	}
	if query.Status() != nil {
		sql += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sql += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var row GetOrdersQueryResponse
		var id uuid.UUID
		var customerID uuid.UUID
		var courierID uuid.NullUUID
		var status string

		err = rows.Scan(
			&id,
			&customerID,
			&courierID,
			&row.Code,
			&row.ObjectType,
			&row.Company,
			&row.Address,
			&row.Notes,
			&row.MobileDelivery,
			&status,
			&row.CreatedAt,
			&row.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		row.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		row.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}
		if courierID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			row.CourierID = &assigned
		}
		row.Status, err = order.StatusFromString(status)
		if err != nil {
			return nil, err
		}

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
