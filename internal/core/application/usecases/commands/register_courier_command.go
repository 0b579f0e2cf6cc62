package commands

import (
	"errors"
	"io"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterCourierCommandIsNotConstructed = errors.New(
		"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
	)
	ErrAddressProofImageIsRequired = errs.NewValueIsRequiredError("address proof image")
	ErrVehicleDocImageIsRequired   = errs.NewValueIsRequiredError("vehicle document image")
	ErrIDPhotoImageIsRequired      = errs.NewValueIsRequiredError("identity photo image")
)

// DocumentUpload is one document image submitted with a courier registration.
// Body is read exactly once, when the handler streams it to the object store.
type DocumentUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (d DocumentUpload) isMissing() bool {
	return d.Body == nil || d.Size <= 0
}

// RegisterCourierCommand represents a courier registration request. Unlike
// the plain registration path it carries the three mandatory document images;
// the resulting account starts pending and cannot log in until an admin
// approves it.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	login        string
	email        string
	phone        string
	password     string
	addressProof DocumentUpload
	vehicleDoc   DocumentUpload
	idPhoto      DocumentUpload

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a courier registration command.
// Login, email, password, and all three document images are required.
func NewRegisterCourierCommand(
	login, email, phone, password string,
	addressProof, vehicleDoc, idPhoto DocumentUpload,
) (RegisterCourierCommand, error) {
	cmd := RegisterCourierCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLogin(login),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setAddressProof(addressProof),
		cmd.setVehicleDoc(vehicleDoc),
		cmd.setIDPhoto(idPhoto),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// Login returns the display login name.
func (c RegisterCourierCommand) Login() string { return c.login }

// Email returns the unique email address.
func (c RegisterCourierCommand) Email() string { return c.email }

// Phone returns the optional phone number.
func (c RegisterCourierCommand) Phone() string { return c.phone }

// Password returns the plaintext password. Hashed by the handler, never
// persisted.
func (c RegisterCourierCommand) Password() string { return c.password }

// AddressProof returns the address proof image upload.
func (c RegisterCourierCommand) AddressProof() DocumentUpload { return c.addressProof }

// VehicleDoc returns the vehicle document image upload.
func (c RegisterCourierCommand) VehicleDoc() DocumentUpload { return c.vehicleDoc }

// IDPhoto returns the identity photo image upload.
func (c RegisterCourierCommand) IDPhoto() DocumentUpload { return c.idPhoto }

func (c *RegisterCourierCommand) setLogin(login string) error {
	if login == "" {
		return user.ErrLoginIsRequired
	}
	c.login = login
	return nil
}

func (c *RegisterCourierCommand) setEmail(email string) error {
	if email == "" {
		return user.ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *RegisterCourierCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *RegisterCourierCommand) setAddressProof(upload DocumentUpload) error {
	if upload.isMissing() {
		return ErrAddressProofImageIsRequired
	}
	c.addressProof = upload
	return nil
}

func (c *RegisterCourierCommand) setVehicleDoc(upload DocumentUpload) error {
	if upload.isMissing() {
		return ErrVehicleDocImageIsRequired
	}
	c.vehicleDoc = upload
	return nil
}

func (c *RegisterCourierCommand) setIDPhoto(upload DocumentUpload) error {
	if upload.isMissing() {
		return ErrIDPhotoImageIsRequired
	}
	c.idPhoto = upload
	return nil
}
