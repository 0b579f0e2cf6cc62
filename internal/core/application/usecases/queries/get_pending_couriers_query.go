package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetPendingCouriersQueryIsNotConstructed = errors.New(
	"GetPendingCouriersQuery must be created via NewGetPendingCouriersQuery constructor",
)

// GetPendingCouriersQuery lists courier registrations awaiting an admin
// decision. Unlike the public courier listing this one includes the stored
// document keys, so the reviewing admin can pull up the images.
type GetPendingCouriersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingCouriersQuery creates a pending registrations query.
func NewGetPendingCouriersQuery() GetPendingCouriersQuery {
	return GetPendingCouriersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingCouriersQueryIsNotConstructed)
}

// GetPendingCouriersQueryResponse is one registration under review,
// oldest first so the queue is worked in arrival order.
type GetPendingCouriersQueryResponse struct {
	ID              kernel.UUID
	Login           string
	Email           string
	Phone           string
	AddressProofKey string
	VehicleDocKey   string
	IDPhotoKey      string
	CreatedAt       time.Time
}
