package handler

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"backoffice/internal/errors"
)

// DataResponse is the success envelope for resource endpoints.
type DataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// MessageResponse is the success envelope for endpoints without a payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, DataResponse{Success: true, Data: data})
}

func fail(status int, message, code string) error {
	return echo.NewHTTPError(status, errors.ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	})
}

// failWith maps a service error to its HTTP form. Only the mapped message reaches the
// client; the underlying error is logged for 5xx responses.
func failWith(c echo.Context, err error, notFoundMsg, duplicateMsg string) error {
	httpErr := errors.MapErrorToHTTP(err, notFoundMsg, duplicateMsg)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Path()),
			slog.Any("error", err))
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return fail(http.StatusBadRequest, "Invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(req); err != nil {
		return fail(http.StatusBadRequest, validationMessage(err), "VALIDATION_FAILED")
	}
	return nil
}

// validationMessage turns the first failed rule into a short message naming the field.
// Validator internals never reach the client.
func validationMessage(err error) string {
	var fields validator.ValidationErrors
	if !stderrors.As(err, &fields) || len(fields) == 0 {
		return "Invalid request"
	}

	fe := fields[0]
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "Please enter a valid email"
	case "url":
		return name + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		if fe.Param() == "0" {
			return name + " cannot be negative"
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s", name, fe.Param())
	default:
		return name + " is invalid"
	}
}

// pathID parses the :id parameter. A malformed id cannot name a stored record, so it is
// reported with the resource's not-found message.
func pathID(c echo.Context, notFoundMsg string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fail(http.StatusNotFound, notFoundMsg, "NOT_FOUND")
	}
	return id, nil
}
