package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders with optional filters. Nil filters mean
// "match everything". The HTTP adapter scopes the filters to the caller:
// customers see their own orders, couriers their assigned ones, managers
// and admins everything.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID    *kernel.UUID
	courierID     *kernel.UUID
	status        *order.Status
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query.
// Each filter may be nil; a supplied status must belong to the closed set.
// With availableOnly set, only unassigned pending mobile-delivery orders
// match and the courier filter is ignored.
func NewGetOrdersQuery(
	customerID, courierID *kernel.UUID,
	status *order.Status,
	availableOnly bool,
) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		query.customerID = customerID
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		query.courierID = courierID
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
		query.status = status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerID returns the owner filter, or nil.
func (q GetOrdersQuery) CustomerID() *kernel.UUID { return q.customerID }

// CourierID returns the assigned-courier filter, or nil.
func (q GetOrdersQuery) CourierID() *kernel.UUID { return q.courierID }

// Status returns the status filter, or nil.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// AvailableOnly reports whether the listing is restricted to orders a
// courier could self-accept.
func (q GetOrdersQuery) AvailableOnly() bool { return q.availableOnly }

// GetOrdersQueryResponse is one order row in the listing, newest first.
type GetOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	CourierID      *kernel.UUID
	Code           string
	ObjectType     string
	Company        string
	Address        string
	Notes          string
	MobileDelivery bool
	Status         order.Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
