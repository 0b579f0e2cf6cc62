package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/user"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterUserRequest is the body of POST /users.
// Role defaults to customer; the courier role is rejected on this path.
type RegisterUserRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the body of POST /login/:role.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and a summary of the
// authenticated account.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Login  string `json:"login"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// UserResponse is the public view of an account. Password hashes and
// document keys never appear here.
type UserResponse struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Available bool      `json:"available"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

func userToResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Login:     u.Login(),
		Email:     u.Email(),
		Phone:     u.Phone(),
		Role:      u.Role().String(),
		Status:    u.Status().String(),
		Available: u.IsAvailable(),
		Approved:  u.IsApproved(),
		CreatedAt: u.CreatedAt(),
	}
}

// CourierResponse is one row of the public courier listing.
type CourierResponse struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
}

func courierToResponse(row queries.GetCouriersQueryResponse) CourierResponse {
	return CourierResponse{
		ID:        row.ID.String(),
		Login:     row.Login,
		Email:     row.Email,
		Phone:     row.Phone,
		Available: row.Available,
		CreatedAt: row.CreatedAt,
	}
}

// PendingCourierResponse is one row of the admin review queue. The document
// keys point at GET /images/:key.
type PendingCourierResponse struct {
	ID              string    `json:"id"`
	Login           string    `json:"login"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	AddressProofKey string    `json:"address_proof_key"`
	VehicleDocKey   string    `json:"vehicle_doc_key"`
	IDPhotoKey      string    `json:"id_photo_key"`
	CreatedAt       time.Time `json:"created_at"`
}

func pendingCourierToResponse(row queries.GetPendingCouriersQueryResponse) PendingCourierResponse {
	return PendingCourierResponse{
		ID:              row.ID.String(),
		Login:           row.Login,
		Email:           row.Email,
		Phone:           row.Phone,
		AddressProofKey: row.AddressProofKey,
		VehicleDocKey:   row.VehicleDocKey,
		IDPhotoKey:      row.IDPhotoKey,
		CreatedAt:       row.CreatedAt,
	}
}

// AdminCourierResponse is one row of the admin courier overview, which
// includes pending and deactivated accounts.
type AdminCourierResponse struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	Available bool      `json:"available"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

func adminCourierToResponse(row queries.GetAllCouriersQueryResponse) AdminCourierResponse {
	return AdminCourierResponse{
		ID:        row.ID.String(),
		Login:     row.Login,
		Email:     row.Email,
		Phone:     row.Phone,
		Status:    row.Status,
		Available: row.Available,
		Approved:  row.Approved,
		CreatedAt: row.CreatedAt,
	}
}

// SetAvailabilityRequest is the body of PUT /couriers/:id/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// ApproveCourierRequest is the body of PUT /admin/couriers/:id/approval.
type ApproveCourierRequest struct {
	Approved bool   `json:"approved"`
	Reason   string `json:"reason"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	Code           string `json:"code"`
	ObjectType     string `json:"object_type"`
	Company        string `json:"company"`
	Address        string `json:"address"`
	Notes          string `json:"notes"`
	MobileDelivery bool   `json:"mobile_delivery"`
}

// EditOrderRequest is the body of PUT /orders/:id. Absent fields are left
// unchanged.
type EditOrderRequest struct {
	Code       *string `json:"code"`
	ObjectType *string `json:"object_type"`
	Company    *string `json:"company"`
	Address    *string `json:"address"`
	Notes      *string `json:"notes"`
}

// SetOrderStatusRequest is the body of PUT /orders/:id/status.
type SetOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignOrderRequest is the body of PUT /orders/:id/assign.
type AssignOrderRequest struct {
	CourierID string `json:"courier_id"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	CourierID      *string   `json:"courier_id,omitempty"`
	Code           string    `json:"code"`
	ObjectType     string    `json:"object_type"`
	Company        string    `json:"company"`
	Address        string    `json:"address"`
	Notes          string    `json:"notes,omitempty"`
	MobileDelivery bool      `json:"mobile_delivery"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func orderToResponse(o *order.Order) OrderResponse {
	response := OrderResponse{
		ID:             o.ID().String(),
		CustomerID:     o.CustomerID().String(),
		Code:           o.Code(),
		ObjectType:     o.ObjectType(),
		Company:        o.Company(),
		Address:        o.Address(),
		Notes:          o.Notes(),
		MobileDelivery: o.IsMobileDelivery(),
		Status:         o.Status().String(),
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
	if o.CourierID() != nil {
		courierID := o.CourierID().String()
		response.CourierID = &courierID
	}
	return response
}

func orderRowToResponse(row queries.GetOrdersQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:             row.ID.String(),
		CustomerID:     row.CustomerID.String(),
		Code:           row.Code,
		ObjectType:     row.ObjectType,
		Company:        row.Company,
		Address:        row.Address,
		Notes:          row.Notes,
		MobileDelivery: row.MobileDelivery,
		Status:         row.Status.String(),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.CourierID != nil {
		courierID := row.CourierID.String()
		response.CourierID = &courierID
	}
	return response
}
