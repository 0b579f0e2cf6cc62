package commands

import (
	"context"
	"fmt"
	"path"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// ErrEmailAlreadyRegistered is returned when the email is already taken.
// Checked before any document upload so a duplicate registration never
// leaves orphaned objects in the store.
var ErrEmailAlreadyRegistered = errs.NewConflictError("email is already registered")

// RegisterCourierCommandHandler creates courier accounts pending approval.
// The three document images are streamed to the object store concurrently;
// if persisting the account fails afterwards, the uploads are removed again
// on a best-effort basis.
type RegisterCourierCommandHandler struct {
	uowFactory UserUoWFactory
	documents  ports.DocumentStore
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(
	uowFactory UserUoWFactory,
	documents ports.DocumentStore,
) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
		documents:  documents,
	}
}

// Handle processes the courier registration and returns the created account.
// The flow is: duplicate email check, concurrent document uploads, then the
// transactional insert. The final insert still races with concurrent
// registrations, so the unique email constraint remains the authority; the
// early check only keeps the common duplicate case away from the store.
func (h RegisterCourierCommandHandler) Handle(
	ctx context.Context,
	command RegisterCourierCommand,
) (*user.User, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(command.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	uow := h.uowFactory.Create()

	// Pre-check on the non-transactional connection; Begin has not run yet.
	taken, err := uow.UserRepository().ExistsByEmail(ctx, command.Email())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailAlreadyRegistered
	}

	docs, err := h.uploadDocuments(ctx, command)
	if err != nil {
		return nil, err
	}

	created, err := user.NewCourier(
		kernel.NewUUID(),
		command.Login(),
		command.Email(),
		command.Phone(),
		string(hash),
		docs,
	)
	if err != nil {
		h.removeDocuments(ctx, docs)
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		h.removeDocuments(ctx, docs)
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The repository binds to the connection at call time, so it must be
	// obtained after Begin to write inside the transaction.
	if err := uow.UserRepository().Add(ctx, created); err != nil {
		h.removeDocuments(ctx, docs)
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		h.removeDocuments(ctx, docs)
		return nil, err
	}

	return created, nil
}

// uploadDocuments streams the three images to the store concurrently.
// On any failure the uploads that did land are removed before returning.
func (h RegisterCourierCommandHandler) uploadDocuments(
	ctx context.Context,
	command RegisterCourierCommand,
) (user.Documents, error) {
	addressKey := documentKey(command.Login(), "address_proof", command.AddressProof().Filename)
	vehicleKey := documentKey(command.Login(), "vehicle_doc", command.VehicleDoc().Filename)
	idKey := documentKey(command.Login(), "id_photo", command.IDPhoto().Filename)

	group, groupCtx := errgroup.WithContext(ctx)
	uploads := []struct {
		key    string
		upload DocumentUpload
	}{
		{addressKey, command.AddressProof()},
		{vehicleKey, command.VehicleDoc()},
		{idKey, command.IDPhoto()},
	}
	for _, item := range uploads {
		group.Go(func() error {
			return h.documents.Put(groupCtx, item.key, item.upload.Body, item.upload.Size, item.upload.ContentType)
		})
	}

	docs := user.NewDocuments(addressKey, vehicleKey, idKey)
	if err := group.Wait(); err != nil {
		h.removeDocuments(ctx, docs)
		return user.Documents{}, fmt.Errorf("uploading courier documents: %w", err)
	}

	return docs, nil
}

// removeDocuments is best effort. A failed removal leaves an orphaned object
// behind but never masks the error that triggered the cleanup.
func (h RegisterCourierCommandHandler) removeDocuments(ctx context.Context, docs user.Documents) {
	for _, key := range []string{docs.AddressProof(), docs.VehicleDoc(), docs.IDPhoto()} {
		if key == "" {
			continue
		}
		_ = h.documents.Remove(ctx, key)
	}
}

// documentKey builds a store key unique per upload. The login and document
// type keep keys readable; the UUID makes retries collision free.
func documentKey(login, docType, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s_%s_%s%s", login, docType, kernel.NewUUID().String(), ext)
}
