// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Handles the conversion between the user domain aggregate
// and its relational representation.
package userrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user aggregates.
// The unique index on email backs the duplicate registration check; role and
// status are persisted as their string forms so the rows read naturally.
type UserDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login           string    `gorm:"type:varchar(255);not null"`
	Email           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone           string    `gorm:"type:varchar(32)"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	Role            string    `gorm:"type:varchar(16);not null;index"`
	Status          string    `gorm:"type:varchar(16);not null;index"`
	Available       bool      `gorm:"not null;default:false"`
	Approved        bool      `gorm:"not null;default:false"`
	AddressProofKey string    `gorm:"type:varchar(512)"`
	VehicleDocKey   string    `gorm:"type:varchar(512)"`
	IDPhotoKey      string    `gorm:"type:varchar(512)"`
	CreatedAt       time.Time `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	docs := aggregate.Documents()
	return UserDTO{
		ID:              aggregate.ID().Bytes(),
		Login:           aggregate.Login(),
		Email:           aggregate.Email(),
		Phone:           aggregate.Phone(),
		PasswordHash:    aggregate.PasswordHash(),
		Role:            aggregate.Role().String(),
		Status:          aggregate.Status().String(),
		Available:       aggregate.IsAvailable(),
		Approved:        aggregate.IsApproved(),
		AddressProofKey: docs.AddressProof(),
		VehicleDocKey:   docs.VehicleDoc(),
		IDPhotoKey:      docs.IDPhoto(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	status, err := user.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.Login,
		dto.Email,
		dto.Phone,
		dto.PasswordHash,
		role,
		status,
		dto.Available,
		dto.Approved,
		user.NewDocuments(dto.AddressProofKey, dto.VehicleDocKey, dto.IDPhotoKey),
		dto.CreatedAt,
	)
}
