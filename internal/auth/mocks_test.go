package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"backoffice/internal/model"
)

// MockAccountLookup is a mock implementation of AccountLookup.
type MockAccountLookup struct {
	mock.Mock
}

func (m *MockAccountLookup) FindActiveByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountLookup) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

const testSecret = "test-secret"

func newTestHasher() *PasswordHasher {
	return NewPasswordHasher(bcrypt.MinCost)
}

func newTestCodec(t *testing.T, opts ...TokenOption) *TokenCodec {
	t.Helper()
	codec, err := NewTokenCodec(testSecret, opts...)
	require.NoError(t, err)
	return codec
}

func newTestAccount(t *testing.T, hasher *PasswordHasher, email, password string) *model.Account {
	t.Helper()
	digest, err := hasher.Hash(password)
	require.NoError(t, err)
	return &model.Account{
		ID:           uuid.New(),
		Name:         "Admin User",
		Email:        email,
		PasswordHash: digest,
		Role:         model.RoleAdministrator,
		Status:       model.AccountActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// newTestContext builds an echo context for a GET request, optionally carrying a
// session cookie.
func newTestContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// sessionCookie returns the auth cookie written to rec, if any.
func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName {
			return c
		}
	}
	return nil
}
