package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingCouriersQueryHandler lists courier registrations the admin has
// not decided on yet. Authorization happens in the command path; this
// handler is only wired behind the admin routes.
type GetPendingCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingCouriersQueryHandler creates a handler for the review queue.
func NewGetPendingCouriersQueryHandler(db *gorm.DB) GetPendingCouriersQueryHandler {
	return GetPendingCouriersQueryHandler{db: db}
}

// Handle executes the listing, oldest registrations first.
func (h GetPendingCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingCouriersQuery,
) ([]GetPendingCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			login,
			email,
			phone,
			address_proof_key,
			vehicle_doc_key,
			id_photo_key,
			created_at
		FROM users
		WHERE role = 'courier' AND status = 'pending'
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]GetPendingCouriersQueryResponse, 0)
	for rows.Next() {
		var courier GetPendingCouriersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&courier.Login,
			&courier.Email,
			&courier.Phone,
			&courier.AddressProofKey,
			&courier.VehicleDocKey,
			&courier.IDPhotoKey,
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
