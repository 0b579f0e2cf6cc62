// Package orderrepo provides data transfer objects and mapping functions for
// order persistence.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// CourierID is nullable: unassigned orders have no courier.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID      *uuid.UUID `gorm:"type:uuid;index"`
	Code           string     `gorm:"type:varchar(64);not null"`
	ObjectType     string     `gorm:"type:varchar(255);not null"`
	Company        string     `gorm:"type:varchar(255);not null"`
	Address        string     `gorm:"type:varchar(512);not null"`
	Notes          string     `gorm:"type:text"`
	MobileDelivery bool       `gorm:"not null;default:false"`
	Status         string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt      time.Time  `gorm:"not null;index"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if aggregate.CourierID() != nil {
		raw := aggregate.CourierID().Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		CourierID:      courierID,
		Code:           aggregate.Code(),
		ObjectType:     aggregate.ObjectType(),
		Company:        aggregate.Company(),
		Address:        aggregate.Address(),
		Notes:          aggregate.Notes(),
		MobileDelivery: aggregate.IsMobileDelivery(),
		Status:         aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO back to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		assigned, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &assigned
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		courierID,
		dto.Code,
		dto.ObjectType,
		dto.Company,
		dto.Address,
		dto.Notes,
		status,
		dto.MobileDelivery,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
