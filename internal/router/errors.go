package router

import (
	stderrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/errors"
)

// errorHandler renders every error in the {success, message, code} envelope. Handlers
// already return envelopes; plain echo errors (unknown route, bad method) are wrapped.
func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he := &echo.HTTPError{Code: http.StatusInternalServerError, Message: "internal server error"}
		var httpErr *echo.HTTPError
		if stderrors.As(err, &httpErr) {
			he = httpErr
		}

		body, ok := he.Message.(errors.ErrorResponse)
		if !ok {
			msg, isString := he.Message.(string)
			if !isString || he.Code >= http.StatusInternalServerError {
				msg = "internal server error"
			}
			body = errors.ErrorResponse{Success: false, Message: msg}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(he.Code)
		} else {
			writeErr = c.JSON(he.Code, body)
		}
		if writeErr != nil {
			e.Logger.Error(writeErr)
		}
	}
}
