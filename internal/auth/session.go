package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "auth-token"

// fallbackDecoyDigest is a cost-10 bcrypt digest of no known password. It stands in for
// the per-process decoy if hashing one fails at startup.
const fallbackDecoyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// InvalidCredentialsMessage is the only login failure text clients ever see.
const InvalidCredentialsMessage = "Invalid email or password"

var (
	// ErrInvalidCredentials is returned for an unknown email, an inactive account or a
	// wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNoSession is returned when a token does not map to a live, active account.
	ErrNoSession = errors.New("no valid session")
)

// AccountLookup is the part of the account store the session manager depends on.
type AccountLookup interface {
	FindActiveByEmail(ctx context.Context, email string) (*model.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
}

// Observer receives session outcomes, e.g. for metrics.
type Observer interface {
	LoginAttempt(outcome string)
	SessionResolved(outcome string)
}

type nopObserver struct{}

func (nopObserver) LoginAttempt(string)    {}
func (nopObserver) SessionResolved(string) {}

// Outcome labels reported to the Observer.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalid      = "invalid"
	OutcomeInactive     = "inactive"
	OutcomeStorageError = "storage_error"
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  *model.Identity
}

// SessionManager issues, resolves and clears cookie-borne sessions. It keeps no
// server-side session state: the signed token plus the live account record are the whole
// session. A token replayed after logout therefore stays usable until it expires or the
// account is deactivated.
type SessionManager struct {
	accounts AccountLookup
	hasher   *PasswordHasher
	codec    *TokenCodec
	secure   bool
	log      *slog.Logger
	observer Observer

	// decoyDigest is compared against when the email is unknown so that the miss costs
	// one bcrypt comparison, like a hit.
	decoyDigest string
}

// SessionOption customises a SessionManager.
type SessionOption func(*SessionManager)

// WithSecureCookies marks the session cookie Secure.
func WithSecureCookies(secure bool) SessionOption {
	return func(m *SessionManager) { m.secure = secure }
}

// WithLogger sets the logger used for session events.
func WithLogger(log *slog.Logger) SessionOption {
	return func(m *SessionManager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithObserver registers an Observer for login and resolution outcomes.
func WithObserver(o Observer) SessionOption {
	return func(m *SessionManager) {
		if o != nil {
			m.observer = o
		}
	}
}

// NewSessionManager creates a session manager.
func NewSessionManager(accounts AccountLookup, hasher *PasswordHasher, codec *TokenCodec, opts ...SessionOption) *SessionManager {
	m := &SessionManager{
		accounts: accounts,
		hasher:   hasher,
		codec:    codec,
		log:      slog.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.decoyDigest = newDecoyDigest(hasher.Hash, m.log)
	return m
}

// Login verifies credentials and mints a session token.
func (m *SessionManager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = model.NormalizeEmail(email)

	account, err := m.accounts.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Burn the same bcrypt time as a real comparison.
			m.hasher.Verify(password, m.decoyDigest)
			m.observer.LoginAttempt(OutcomeInvalid)
			return nil, ErrInvalidCredentials
		}
		m.observer.LoginAttempt(OutcomeStorageError)
		return nil, fmt.Errorf("lookup account: %w", err)
	}

	if !account.IsActive() || !m.hasher.Verify(password, account.PasswordHash) {
		m.observer.LoginAttempt(OutcomeInvalid)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := m.codec.issue(TokenSubject{
		ID:    account.ID.String(),
		Email: account.Email,
		Role:  account.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("mint session token: %w", err)
	}

	m.observer.LoginAttempt(OutcomeSuccess)
	m.log.Info("login succeeded", slog.String("account_id", account.ID.String()))
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  account.Identity(),
	}, nil
}

// Resolve maps a raw token to the live identity of its account. Invalid tokens and
// missing or inactive accounts yield ErrNoSession; store failures are returned wrapped.
func (m *SessionManager) Resolve(ctx context.Context, token string) (*model.Identity, error) {
	claims, err := m.codec.Verify(token)
	if err != nil {
		m.observer.SessionResolved(OutcomeInvalid)
		return nil, ErrNoSession
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		m.observer.SessionResolved(OutcomeInvalid)
		return nil, ErrNoSession
	}

	account, err := m.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			m.observer.SessionResolved(OutcomeInactive)
			return nil, ErrNoSession
		}
		m.observer.SessionResolved(OutcomeStorageError)
		return nil, fmt.Errorf("load session account: %w", err)
	}
	if !account.IsActive() {
		m.observer.SessionResolved(OutcomeInactive)
		return nil, ErrNoSession
	}

	m.observer.SessionResolved(OutcomeSuccess)
	return account.Identity(), nil
}

// CurrentIdentity resolves the session carried by the request cookie. A missing or
// invalid session returns (nil, nil); an invalid cookie is cleared as a side effect.
func (m *SessionManager) CurrentIdentity(c echo.Context) (*model.Identity, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	identity, err := m.Resolve(c.Request().Context(), cookie.Value)
	switch {
	case err == nil:
		return identity, nil
	case errors.Is(err, ErrNoSession):
		m.ClearSessionCookie(c)
		return nil, nil
	default:
		return nil, err
	}
}

// Logout clears the session cookie. Safe to call without a session.
func (m *SessionManager) Logout(c echo.Context) {
	m.ClearSessionCookie(c)
}

// SetSessionCookie writes token as the session cookie.
func (m *SessionManager) SetSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.codec.TTL().Seconds()),
	})
}

// ClearSessionCookie expires the session cookie using the same attributes it was set with.
func (m *SessionManager) ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}

func newDecoyDigest(hash func(string) (string, error), log *slog.Logger) string {
	digest, err := hash(uuid.NewString())
	if err != nil {
		log.Error("decoy hash failed, using fallback digest", slog.Any("error", err))
		return fallbackDecoyDigest
	}
	return digest
}
