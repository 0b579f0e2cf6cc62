package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an Order that was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	// ErrCodeIsRequired is returned when the tracking code is missing.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
	// ErrObjectTypeIsRequired is returned when the object type is missing.
	ErrObjectTypeIsRequired = errs.NewValueIsRequiredError("object type")
	// ErrCompanyIsRequired is returned when the company is missing.
	ErrCompanyIsRequired = errs.NewValueIsRequiredError("company")
	// ErrAddressIsRequired is returned when the delivery address is missing.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrAlreadyAssigned rejects self-acceptance of an order that already has
	// a courier.
	ErrAlreadyAssigned = errs.NewConflictError("order already assigned")
	// ErrNotPending rejects self-acceptance of an order past the pending state.
	ErrNotPending = errs.NewConflictError("order is not pending")
	// ErrNotMobileEligible rejects self-acceptance of an order not flagged for
	// mobile delivery.
	ErrNotMobileEligible = errs.NewConflictError("order is not available for mobile delivery")
	// ErrOrderIsTerminal rejects assignment of delivered or cancelled orders.
	ErrOrderIsTerminal = errs.NewConflictError("order is in a terminal state")
	// ErrNoFieldsToUpdate rejects an edit that supplies no fields.
	ErrNoFieldsToUpdate = errs.NewValueIsRequiredError("at least one field to update")
)

// Order is the aggregate root for a delivery request. It owns the lifecycle
// state machine and the assignment rules.
//
// Invariants:
//   - customerID is set at creation and never changes
//   - the courier is set at most once through self-acceptance; only a manager
//     assignment may overwrite it
//   - self-acceptance requires courierID=nil, pending status, and the
//     mobile-delivery flag
//   - status only moves along pending → in_progress → delivered, with
//     cancelled reachable from pending or in_progress
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	courierID      *kernel.UUID
	code           string
	objectType     string
	company        string
	address        string
	notes          string
	mobileDelivery bool
	status         Status
	createdAt      time.Time
	updatedAt      time.Time

	guard guard.ConstructorGuard
}

// FieldChanges is a partial update of the free-form order fields.
// Nil pointers mean "leave unchanged".
type FieldChanges struct {
	Code       *string
	ObjectType *string
	Company    *string
	Address    *string
	Notes      *string
}

// IsEmpty reports whether no field was supplied.
func (c FieldChanges) IsEmpty() bool {
	return c.Code == nil && c.ObjectType == nil && c.Company == nil && c.Address == nil && c.Notes == nil
}

// NewOrder creates a pending, unassigned order for a customer.
// All fields except notes are required.
func NewOrder(
	id, customerID kernel.UUID,
	code, objectType, company, address, notes string,
	mobileDelivery bool,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		notes:          notes,
		mobileDelivery: mobileDelivery,
		status:         StatusPending,
		createdAt:      now,
		updatedAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCode(code),
		o.setObjectType(objectType),
		o.setCompany(company),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id, customerID kernel.UUID,
	courierID *kernel.UUID,
	code, objectType, company, address, notes string,
	status Status,
	mobileDelivery bool,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		courierID:      courierID,
		notes:          notes,
		mobileDelivery: mobileDelivery,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setCode(code),
		o.setObjectType(objectType),
		o.setCompany(company),
		o.setAddress(address),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the owning customer. Immutable after creation.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// CourierID returns the assigned courier, or nil when unassigned.
func (o *Order) CourierID() *kernel.UUID { return o.courierID }

// Code returns the customer-facing tracking code.
func (o *Order) Code() string { return o.code }

// ObjectType returns the kind of object being delivered.
func (o *Order) ObjectType() string { return o.objectType }

// Company returns the company the delivery relates to.
func (o *Order) Company() string { return o.company }

// Address returns the delivery address.
func (o *Order) Address() string { return o.address }

// Notes returns the optional free-form notes.
func (o *Order) Notes() string { return o.notes }

// IsMobileDelivery reports eligibility for courier self-acceptance.
func (o *Order) IsMobileDelivery() bool { return o.mobileDelivery }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last mutation time.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// IsSelfAcceptable reports whether a courier may claim this order:
// unassigned, pending, and flagged for mobile delivery.
func (o *Order) IsSelfAcceptable() bool {
	return o.courierID == nil && o.status == StatusPending && o.mobileDelivery
}

// Accept claims the order for a courier through the self-service path.
// The preconditions are checked in a fixed order so each failure carries its
// own conflict message. The persistence layer re-checks them atomically; this
// method defines the semantics and serves the non-racy validation.
func (o *Order) Accept(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch {
	case o.courierID != nil:
		return ErrAlreadyAssigned
	case o.status != StatusPending:
		return ErrNotPending
	case !o.mobileDelivery:
		return ErrNotMobileEligible
	}

	o.courierID = &courierID
	o.status = StatusInProgress
	o.touch()
	return nil
}

// AssignTo sets the courier by manager decision. Overwriting an existing
// courier is allowed; a pending order moves to in_progress, any other
// non-terminal status is left unchanged. Terminal orders are rejected.
func (o *Order) AssignTo(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return ErrOrderIsTerminal
	}

	o.courierID = &courierID
	if o.status == StatusPending {
		o.status = StatusInProgress
	}
	o.touch()
	return nil
}

// ChangeStatus moves the order along the transition graph.
// Re-applying the current status is an idempotent no-op that only touches
// updatedAt; illegal moves return a conflict error.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ApplyChanges applies a partial edit of the free-form fields.
// Supplied required fields must remain non-empty.
func (o *Order) ApplyChanges(changes FieldChanges) error {
	if changes.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	var err error
	if changes.Code != nil {
		err = errors.Join(err, o.setCode(*changes.Code))
	}
	if changes.ObjectType != nil {
		err = errors.Join(err, o.setObjectType(*changes.ObjectType))
	}
	if changes.Company != nil {
		err = errors.Join(err, o.setCompany(*changes.Company))
	}
	if changes.Address != nil {
		err = errors.Join(err, o.setAddress(*changes.Address))
	}
	if err != nil {
		return err
	}

	if changes.Notes != nil {
		o.notes = *changes.Notes
	}
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	o.code = code
	return nil
}

func (o *Order) setObjectType(objectType string) error {
	if objectType == "" {
		return ErrObjectTypeIsRequired
	}
	o.objectType = objectType
	return nil
}

func (o *Order) setCompany(company string) error {
	if company == "" {
		return ErrCompanyIsRequired
	}
	o.company = company
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
