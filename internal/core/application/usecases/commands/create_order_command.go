package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new delivery order.
// The order is created pending and unassigned, owned by the acting user.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actorID, "PKG-001", "envelope", "Acme", "123 Main St", "", true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actorID        kernel.UUID
	code           string
	objectType     string
	company        string
	address        string
	notes          string
	mobileDelivery bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an order registration command.
// Code, object type, company, and address are required; notes are optional.
func NewCreateOrderCommand(
	actorID kernel.UUID,
	code, objectType, company, address, notes string,
	mobileDelivery bool,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes:          notes,
		mobileDelivery: mobileDelivery,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setCode(code),
		cmd.setObjectType(objectType),
		cmd.setCompany(company),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ActorID returns the authenticated principal, who becomes the order owner.
func (c CreateOrderCommand) ActorID() kernel.UUID { return c.actorID }

// Code returns the customer-facing tracking code.
func (c CreateOrderCommand) Code() string { return c.code }

// ObjectType returns the kind of object being delivered.
func (c CreateOrderCommand) ObjectType() string { return c.objectType }

// Company returns the company the delivery relates to.
func (c CreateOrderCommand) Company() string { return c.company }

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string { return c.address }

// Notes returns the optional free-form notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// MobileDelivery returns whether couriers may self-accept this order.
func (c CreateOrderCommand) MobileDelivery() bool { return c.mobileDelivery }

func (c *CreateOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *CreateOrderCommand) setCode(code string) error {
	if code == "" {
		return order.ErrCodeIsRequired
	}
	c.code = code
	return nil
}

func (c *CreateOrderCommand) setObjectType(objectType string) error {
	if objectType == "" {
		return order.ErrObjectTypeIsRequired
	}
	c.objectType = objectType
	return nil
}

func (c *CreateOrderCommand) setCompany(company string) error {
	if company == "" {
		return order.ErrCompanyIsRequired
	}
	c.company = company
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return order.ErrAddressIsRequired
	}
	c.address = address
	return nil
}
