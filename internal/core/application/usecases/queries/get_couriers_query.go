package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCouriersQueryIsNotConstructed = errors.New(
	"GetCouriersQuery must be created via NewGetCouriersQuery constructor",
)

// GetCouriersQuery lists active couriers, optionally narrowed to a single
// email or to the available ones. Pending and deactivated couriers never
// show up here; the admin review listing covers those.
type GetCouriersQuery struct { //nolint:recvcheck //using for validation
	email         string
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetCouriersQuery creates a courier listing query.
// An empty email matches everyone.
func NewGetCouriersQuery(email string, availableOnly bool) GetCouriersQuery {
	return GetCouriersQuery{
		email:         email,
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetCouriersQueryIsNotConstructed)
}

// Email returns the exact-match email filter, or empty.
func (q GetCouriersQuery) Email() string { return q.email }

// AvailableOnly reports whether unavailable couriers are filtered out.
func (q GetCouriersQuery) AvailableOnly() bool { return q.availableOnly }

// GetCouriersQueryResponse is one courier row in the listing.
// Document keys and password hashes stay out of this view.
type GetCouriersQueryResponse struct {
	ID        kernel.UUID
	Login     string
	Email     string
	Phone     string
	Available bool
	CreatedAt time.Time
}
