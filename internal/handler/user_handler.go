package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/model"
	"backoffice/internal/service"
)

const (
	userNotFound    = "User not found"
	userEmailExists = "Email already exists"
)

// UserHandler serves back-office user management.
type UserHandler struct {
	svc service.AccountService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.AccountService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Name     string              `json:"name" validate:"required"`
	Email    string              `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required,min=6"`
	Role     model.Role          `json:"role" validate:"omitempty,oneof=administrator standard"`
	Status   model.AccountStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Phone    string              `json:"phone"`
}

// UpdateUserRequest lists the fields a user update may change.
type UpdateUserRequest struct {
	Name     *string              `json:"name" validate:"omitempty,min=1"`
	Email    *string              `json:"email" validate:"omitempty,email"`
	Password *string              `json:"password" validate:"omitempty,min=6"`
	Role     *model.Role          `json:"role" validate:"omitempty,oneof=administrator standard"`
	Status   *model.AccountStatus `json:"status" validate:"omitempty,oneof=active inactive"`
	Phone    *string              `json:"phone"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param search query string false "Match on name or email"
// @Success 200 {object} DataResponse{data=[]model.Account}
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return failWith(c, err, userNotFound, userEmailExists)
	}
	return respond(c, http.StatusOK, users)
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} DataResponse{data=model.Account}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.svc.Create(c.Request().Context(), service.CreateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
		Phone:    req.Phone,
	})
	if err != nil {
		return failWith(c, err, userNotFound, userEmailExists)
	}
	return respond(c, http.StatusCreated, user)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} DataResponse{data=model.Account}
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, userNotFound)
	if err != nil {
		return err
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return failWith(c, err, userNotFound, userEmailExists)
	}
	return respond(c, http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} DataResponse{data=model.Account}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, userNotFound)
	if err != nil {
		return err
	}
	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.svc.Update(c.Request().Context(), id, service.UpdateAccountInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Status:   req.Status,
		Phone:    req.Phone,
	})
	if err != nil {
		return failWith(c, err, userNotFound, userEmailExists)
	}
	return respond(c, http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, userNotFound)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return failWith(c, err, userNotFound, userEmailExists)
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "User deleted successfully"})
}
