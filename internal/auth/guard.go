package auth

import (
	"errors"
	"log/slog"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
)

const (
	identityContextKey = "identity"
	resolveErrKey      = "session_resolve_error"
)

// Guard rejects requests without a valid session before the wrapped handler runs. The
// session cookie is extracted by echo-jwt and resolved through the session manager, so
// the account is re-read from the store on every request.
func Guard(sessions *SessionManager) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + SessionCookieName,
		ContextKey:  identityContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			identity, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				c.Set(resolveErrKey, err)
				return nil, err
			}
			return identity, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			resolveErr, _ := c.Get(resolveErrKey).(error)
			switch {
			case resolveErr == nil:
				// No cookie at all.
			case errors.Is(resolveErr, ErrNoSession):
				sessions.ClearSessionCookie(c)
			default:
				sessions.log.Error("session resolution failed",
					slog.Any("error", resolveErr),
					slog.String("path", c.Request().URL.Path))
				return echo.NewHTTPError(http.StatusServiceUnavailable, apperrors.ErrorResponse{
					Success: false,
					Message: "Service temporarily unavailable",
					Code:    "STORAGE_UNAVAILABLE",
				})
			}
			return unauthorized()
		},
	})
}

// RequireIdentity returns the identity stored by Guard, or ErrUnauthorized.
func RequireIdentity(c echo.Context) (*model.Identity, error) {
	identity, ok := c.Get(identityContextKey).(*model.Identity)
	if !ok || identity == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return identity, nil
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Success: false,
		Message: "Unauthorized",
		Code:    "UNAUTHORIZED",
	})
}
