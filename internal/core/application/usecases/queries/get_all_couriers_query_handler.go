package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllCouriersQueryHandler lists every courier account for the admin
// overview, including pending and deactivated ones.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for the admin overview.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the listing, ordered by login.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]GetAllCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			login,
			email,
			phone,
			status,
			available,
			approved,
			created_at
		FROM users
		WHERE role = 'courier'
		ORDER BY login
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetAllCouriersQueryResponse, 0)
	for rows.Next() {
		var courier GetAllCouriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&courier.Login,
			&courier.Email,
			&courier.Phone,
			&courier.Status,
			&courier.Available,
			&courier.Approved,
			&courier.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		courier.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, courier)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
