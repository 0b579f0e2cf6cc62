package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCouriersQueryHandler lists active couriers from the database.
type GetCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetCouriersQueryHandler creates a handler for courier listings.
func NewGetCouriersQueryHandler(db *gorm.DB) GetCouriersQueryHandler {
	return GetCouriersQueryHandler{db: db}
}

// Handle executes the listing, sorted by login.
func (h GetCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetCouriersQuery,
) ([]GetCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			login,
			email,
			phone,
			available,
			created_at
		FROM users
		WHERE role = 'courier' AND status = 'active'
	`
	args := make([]any, 0, 1)

	if query.Email() != "" {
		sql += " AND email = ?"
		args = append(args, query.Email())
	}
	if query.AvailableOnly() {
		sql += " AND available"
	}
	sql += " ORDER BY login"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetCouriersQueryResponse, 0)
	for rows.Next() {
		var courier GetCouriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&courier.Login,
			&courier.Email,
			&courier.Phone,
			&courier.Available,
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
