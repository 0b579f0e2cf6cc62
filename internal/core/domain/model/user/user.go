package user

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrUserIsNotConstructed is returned when using a User that was not
	// created through NewUser, NewCourier, or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser, NewCourier, or RestoreUser")
	// ErrLoginIsRequired is returned when the login is missing.
	ErrLoginIsRequired = errs.NewValueIsRequiredError("login")
	// ErrEmailIsRequired is returned when the email is missing.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when the password hash is missing.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password")
	// ErrCourierSelfRegistration is returned when a courier is created through
	// the plain registration path instead of the dedicated one.
	ErrCourierSelfRegistration = errs.NewValueIsInvalidErrorWithCause("role",
		errors.New("couriers must register through the courier registration path"))
	// ErrDocumentsIncomplete is returned when a courier is created without all
	// three required document images.
	ErrDocumentsIncomplete = errs.NewValueIsRequiredError(
		"address proof, vehicle document, and identity photo images")
	// ErrNotACourier is returned for courier-only operations on other roles.
	ErrNotACourier = errs.NewAccessForbiddenError("operation is restricted to couriers")
)

// Courier login gating failures, checked in this order.
var (
	// ErrLoginDocumentsMissing rejects couriers with an incomplete document set.
	ErrLoginDocumentsMissing = errs.NewAccessForbiddenError(
		"registration incomplete: all required document images must be submitted")
	// ErrLoginNotApproved rejects couriers the admin has not approved yet.
	ErrLoginNotApproved = errs.NewAccessForbiddenError(
		"registration awaiting administrator approval")
	// ErrLoginPending rejects accounts still under review.
	ErrLoginPending = errs.NewAccessForbiddenError(
		"registration under review: login is not allowed yet")
	// ErrLoginInactive rejects disabled accounts.
	ErrLoginInactive = errs.NewAccessForbiddenError("account is inactive")
)

// User is the aggregate root for every principal in the system: customers,
// couriers, managers, and admins. Couriers carry extra state driving the
// approval workflow (document keys, approved flag, availability).
//
// Invariants:
//   - login, email, and password hash are never empty
//   - role and status always belong to their closed sets
//   - couriers are created pending and unapproved, with a complete document set
//   - a courier cannot log in unless approved, documented, and active
type User struct {
	id           kernel.UUID
	login        string
	email        string
	phone        string
	passwordHash string
	role         Role
	status       Status
	available    bool
	approved     bool
	documents    Documents
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a customer, admin, or manager account in active status.
// Couriers must be created through NewCourier; passing RoleCourier here
// returns ErrCourierSelfRegistration.
func NewUser(id kernel.UUID, login, email, phone, passwordHash string, role Role) (*User, error) {
	if role == RoleCourier {
		return nil, ErrCourierSelfRegistration
	}

	u := &User{
		phone:     phone,
		status:    StatusActive,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setLogin(login),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// NewCourier creates a courier account awaiting admin approval.
// All three document images must already be stored; the courier starts in
// pending status, unapproved and unavailable.
func NewCourier(id kernel.UUID, login, email, phone, passwordHash string, documents Documents) (*User, error) {
	if !documents.IsComplete() {
		return nil, ErrDocumentsIncomplete
	}

	u := &User{
		phone:     phone,
		role:      RoleCourier,
		status:    StatusPending,
		documents: documents,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setLogin(login),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence without re-running the
// creation rules. Role and status are still validated against their sets.
func RestoreUser(
	id kernel.UUID,
	login, email, phone, passwordHash string,
	role Role,
	status Status,
	available, approved bool,
	documents Documents,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		phone:     phone,
		available: available,
		approved:  approved,
		documents: documents,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setLogin(login),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
		u.setStatus(status),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Login returns the display login name.
func (u *User) Login() string { return u.login }

// Email returns the unique email address.
func (u *User) Email() string { return u.email }

// Phone returns the optional phone number.
func (u *User) Phone() string { return u.phone }

// PasswordHash returns the stored bcrypt hash. Never serialize this.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's role.
func (u *User) Role() Role { return u.role }

// Status returns the account lifecycle status.
func (u *User) Status() Status { return u.status }

// IsAvailable reports the courier availability flag.
func (u *User) IsAvailable() bool { return u.available }

// IsApproved reports whether the admin approved this courier.
func (u *User) IsApproved() bool { return u.approved }

// Documents returns the courier's stored document keys.
func (u *User) Documents() Documents { return u.documents }

// CreatedAt returns the registration time.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// IsActive reports whether the account is allowed to act.
func (u *User) IsActive() bool {
	return u.status == StatusActive
}

// CanLogin checks the role-specific login gates.
//
// Couriers are checked in a fixed order, each failure with its own message:
// incomplete documents, missing approval, pending status, inactive status.
// Other roles are only rejected when inactive.
func (u *User) CanLogin() error {
	if u.role == RoleCourier {
		switch {
		case !u.documents.IsComplete():
			return ErrLoginDocumentsMissing
		case !u.approved:
			return ErrLoginNotApproved
		case u.status == StatusPending:
			return ErrLoginPending
		case u.status == StatusInactive:
			return ErrLoginInactive
		}
		return nil
	}

	if u.status == StatusInactive {
		return ErrLoginInactive
	}
	return nil
}

// SetAvailability overwrites the courier availability flag.
// Only couriers carry the flag; other roles are rejected.
func (u *User) SetAvailability(available bool) error {
	if u.role != RoleCourier {
		return ErrNotACourier
	}
	u.available = available
	return nil
}

// Approve records the admin's decision on a courier registration.
// Approval activates the account; rejection deactivates it.
func (u *User) Approve(approved bool) error {
	if u.role != RoleCourier {
		return ErrNotACourier
	}

	u.approved = approved
	if approved {
		u.status = StatusActive
	} else {
		u.status = StatusInactive
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setLogin(login string) error {
	if login == "" {
		return ErrLoginIsRequired
	}
	u.login = login
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}
