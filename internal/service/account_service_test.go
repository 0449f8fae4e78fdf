package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/auth"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
)

func newAccountServiceForTest(repo *MockAccountRepository) AccountService {
	return NewAccountService(repo, auth.NewPasswordHasher(bcrypt.MinCost), nil)
}

func TestAccountService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := newAccountServiceForTest(repo)

	repo.On("FindByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*model.Account")).Return(nil)

	account, err := svc.Create(ctx, CreateAccountInput{
		Name:     " New User ",
		Email:    " New@Example.com ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", account.Email)
	assert.Equal(t, "New User", account.Name)
	assert.NotEqual(t, "secret123", account.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret123")))
	repo.AssertExpectations(t)
}

func TestAccountService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := newAccountServiceForTest(repo)

	repo.On("FindByEmail", ctx, "taken@example.com").Return(&model.Account{ID: uuid.New()}, nil)

	account, err := svc.Create(ctx, CreateAccountInput{Email: "taken@example.com", Password: "secret123"})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Create_DuplicateRace(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountRepository)
	svc := newAccountServiceForTest(repo)

	repo.On("FindByEmail", ctx, "race@example.com").Return(nil, apperrors.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(apperrors.ErrDuplicate)

	_, err := svc.Create(ctx, CreateAccountInput{Email: "race@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestAccountService_Create_Validation(t *testing.T) {
	svc := newAccountServiceForTest(new(MockAccountRepository))

	_, err := svc.Create(context.Background(), CreateAccountInput{Email: " ", Password: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Create(context.Background(), CreateAccountInput{Email: "a@example.com"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAccountService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(MockAccountRepository)
	svc := newAccountServiceForTest(repo)

	existing := &model.Account{ID: id, Email: "old@example.com", PasswordHash: "old-hash", Role: model.RoleStandard}
	repo.On("FindByID", ctx, id).Return(existing, nil)
	repo.On("FindByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound)
	repo.On("Update", ctx, existing).Return(nil)

	email, password, role := "NEW@example.com", "changed-pass", model.RoleAdministrator
	account, err := svc.Update(ctx, id, UpdateAccountInput{Email: &email, Password: &password, Role: &role})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", account.Email)
	assert.Equal(t, model.RoleAdministrator, account.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("changed-pass")))
	repo.AssertExpectations(t)
}

func TestAccountService_Update_EmptyPasswordKeepsHash(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(MockAccountRepository)
	svc := newAccountServiceForTest(repo)

	existing := &model.Account{ID: id, Email: "a@example.com", PasswordHash: "kept"}
	repo.On("FindByID", ctx, id).Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	empty := ""
	account, err := svc.Update(ctx, id, UpdateAccountInput{Password: &empty})

	require.NoError(t, err)
	assert.Equal(t, "kept", account.PasswordHash)
}

func TestAccountService_Update_EmailTakenByOther(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(MockAccountRepository)
	svc := newAccountServiceForTest(repo)

	repo.On("FindByID", ctx, id).Return(&model.Account{ID: id, Email: "mine@example.com"}, nil)
	repo.On("FindByEmail", ctx, "theirs@example.com").Return(&model.Account{ID: uuid.New()}, nil)

	email := "theirs@example.com"
	_, err := svc.Update(ctx, id, UpdateAccountInput{Email: &email})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAccountService_Get_StorageDown(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(MockAccountRepository)
	svc := newAccountServiceForTest(repo)

	storeErr := fmt.Errorf("%w: connection refused", apperrors.ErrStorageUnavailable)
	repo.On("FindByID", ctx, id).Return(nil, storeErr)

	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}

func TestAccountService_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	repo := new(MockAccountRepository)
	svc := newAccountServiceForTest(repo)

	repo.On("Delete", ctx, id).Return(apperrors.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, id), apperrors.ErrNotFound)
}
