package queries_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/auth"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmailAndRole(ctx context.Context, email string, role user.Role) (*user.User, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newLoginHandler(t *testing.T, repo *MockUserRepository) queries.LoginQueryHandler {
	t.Helper()
	issuer, err := auth.NewTokenIssuer("test-signing-secret", time.Hour)
	require.NoError(t, err)
	return queries.NewLoginQueryHandler(repo, issuer)
}

func restoreAccount(
	t *testing.T,
	role user.Role,
	status user.Status,
	approved bool,
	docs user.Documents,
	passwordHash string,
) *user.User {
	t.Helper()
	u, err := user.RestoreUser(
		kernel.NewUUID(), "ana", "ana@example.com", "", passwordHash,
		role, status, false, approved, docs, time.Now().UTC(),
	)
	require.NoError(t, err)
	return u
}

func TestLoginQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	hash := hashPassword(t, "s3cret")
	account := restoreAccount(t, user.RoleCustomer, user.StatusActive, false, user.Documents{}, hash)

	repo := new(MockUserRepository)
	repo.On("GetByEmailAndRole", ctx, "ana@example.com", user.RoleCustomer).Return(account, nil).Once()

	h := newLoginHandler(t, repo)
	query, err := queries.NewLoginQuery("ana@example.com", "s3cret", user.RoleCustomer)
	require.NoError(t, err)

	response, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.NotEmpty(t, response.Token)
	assert.True(t, response.UserID.IsEqual(account.ID()))
	assert.Equal(t, user.RoleCustomer, response.Role)
	repo.AssertExpectations(t)
}

func TestLoginQueryHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()

	repo := new(MockUserRepository)
	repo.On("GetByEmailAndRole", ctx, "ghost@example.com", user.RoleCustomer).
		Return(nil, errs.NewObjectNotFoundError("user", "ghost@example.com")).Once()

	h := newLoginHandler(t, repo)
	query, err := queries.NewLoginQuery("ghost@example.com", "s3cret", user.RoleCustomer)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestLoginQueryHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	hash := hashPassword(t, "s3cret")
	account := restoreAccount(t, user.RoleCustomer, user.StatusActive, false, user.Documents{}, hash)

	repo := new(MockUserRepository)
	repo.On("GetByEmailAndRole", ctx, "ana@example.com", user.RoleCustomer).Return(account, nil).Once()

	h := newLoginHandler(t, repo)
	query, err := queries.NewLoginQuery("ana@example.com", "wrong", user.RoleCustomer)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrNotAuthenticated)
}

func TestLoginQueryHandler_Handle_CourierGates(t *testing.T) {
	ctx := t.Context()
	hash := hashPassword(t, "s3cret")
	docs := user.NewDocuments("addr.jpg", "vehicle.jpg", "id.jpg")

	incompleteDocs := user.NewDocuments("addr.jpg", "", "id.jpg")

	tests := []struct {
		name     string
		account  *user.User
		password string
		want     error
	}{
		{
			name:     "missing_document_is_forbidden",
			account:  restoreAccount(t, user.RoleCourier, user.StatusActive, true, incompleteDocs, hash),
			password: "s3cret",
			want:     user.ErrLoginDocumentsMissing,
		},
		{
			// The gate fires before the password compare, so the
			// forbidden message wins even on a wrong password.
			name:     "missing_document_wins_over_wrong_password",
			account:  restoreAccount(t, user.RoleCourier, user.StatusActive, true, incompleteDocs, hash),
			password: "wrong",
			want:     user.ErrLoginDocumentsMissing,
		},
		{
			name:     "unapproved_courier_is_forbidden",
			account:  restoreAccount(t, user.RoleCourier, user.StatusPending, false, docs, hash),
			password: "s3cret",
			want:     user.ErrLoginNotApproved,
		},
		{
			name:     "unapproved_courier_wins_over_wrong_password",
			account:  restoreAccount(t, user.RoleCourier, user.StatusPending, false, docs, hash),
			password: "wrong",
			want:     user.ErrLoginNotApproved,
		},
		{
			name:     "pending_approved_courier_is_forbidden",
			account:  restoreAccount(t, user.RoleCourier, user.StatusPending, true, docs, hash),
			password: "s3cret",
			want:     user.ErrLoginPending,
		},
		{
			name:     "inactive_courier_is_forbidden",
			account:  restoreAccount(t, user.RoleCourier, user.StatusInactive, true, docs, hash),
			password: "s3cret",
			want:     user.ErrLoginInactive,
		},
		{
			name:     "active_approved_courier_logs_in",
			account:  restoreAccount(t, user.RoleCourier, user.StatusActive, true, docs, hash),
			password: "s3cret",
			want:     nil,
		},
		{
			name:     "active_approved_courier_still_needs_the_password",
			account:  restoreAccount(t, user.RoleCourier, user.StatusActive, true, docs, hash),
			password: "wrong",
			want:     errs.ErrNotAuthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			repo.On("GetByEmailAndRole", ctx, "ana@example.com", user.RoleCourier).
				Return(tt.account, nil).Once()

			h := newLoginHandler(t, repo)
			query, err := queries.NewLoginQuery("ana@example.com", tt.password, user.RoleCourier)
			require.NoError(t, err)

			response, err := h.Handle(ctx, query)
			if tt.want != nil {
				require.ErrorIs(t, err, tt.want)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, response.Token)
		})
	}
}

func TestLoginQueryHandler_Handle_InvalidQuery(t *testing.T) {
	repo := new(MockUserRepository)
	h := newLoginHandler(t, repo)

	_, err := h.Handle(t.Context(), queries.LoginQuery{})
	require.ErrorIs(t, err, queries.ErrLoginQueryIsNotConstructed)
	repo.AssertNotCalled(t, "GetByEmailAndRole")
}
