package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/model"
	"backoffice/internal/service"
)

const testimonialNotFound = "Testimonial not found"

// TestimonialHandler serves testimonials and their moderation.
type TestimonialHandler struct {
	svc service.TestimonialService
}

// NewTestimonialHandler creates a handler layer.
func NewTestimonialHandler(svc service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{svc: svc}
}

// CreateTestimonialRequest is the payload for creating a testimonial.
type CreateTestimonialRequest struct {
	Name     string                  `json:"name" validate:"required"`
	Email    string                  `json:"email" validate:"required,email"`
	Company  string                  `json:"company"`
	Position string                  `json:"position"`
	Message  string                  `json:"message" validate:"required"`
	Rating   int                     `json:"rating" validate:"omitempty,min=1,max=5"`
	Image    string                  `json:"image" validate:"omitempty,url"`
	Status   model.TestimonialStatus `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// UpdateTestimonialRequest lists the fields a testimonial update may change.
type UpdateTestimonialRequest struct {
	Name     *string                  `json:"name"`
	Email    *string                  `json:"email" validate:"omitempty,email"`
	Company  *string                  `json:"company"`
	Position *string                  `json:"position"`
	Message  *string                  `json:"message"`
	Rating   *int                     `json:"rating" validate:"omitempty,min=1,max=5"`
	Image    *string                  `json:"image"`
	Status   *model.TestimonialStatus `json:"status" validate:"omitempty,oneof=pending approved rejected"`
}

// ListTestimonials godoc
// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Param status query string false "pending, approved (default), rejected or all"
// @Success 200 {object} DataResponse{data=[]model.Testimonial}
// @Failure 400 {object} errors.ErrorResponse
// @Router /testimonials [get]
func (h *TestimonialHandler) ListTestimonials(c echo.Context) error {
	testimonials, err := h.svc.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return failWith(c, err, testimonialNotFound, "")
	}
	return respond(c, http.StatusOK, testimonials)
}

// GetTestimonial godoc
// @Summary Get testimonial by id
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} DataResponse{data=model.Testimonial}
// @Failure 404 {object} errors.ErrorResponse
// @Router /testimonials/{id} [get]
func (h *TestimonialHandler) GetTestimonial(c echo.Context) error {
	id, err := pathID(c, testimonialNotFound)
	if err != nil {
		return err
	}
	testimonial, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return failWith(c, err, testimonialNotFound, "")
	}
	return respond(c, http.StatusOK, testimonial)
}

// CreateTestimonial godoc
// @Summary Create testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param testimonial body CreateTestimonialRequest true "Testimonial payload"
// @Success 201 {object} DataResponse{data=model.Testimonial}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /testimonials [post]
func (h *TestimonialHandler) CreateTestimonial(c echo.Context) error {
	var req CreateTestimonialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	testimonial, err := h.svc.Create(c.Request().Context(), &model.Testimonial{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Position: req.Position,
		Message:  req.Message,
		Rating:   req.Rating,
		Image:    req.Image,
		Status:   req.Status,
	})
	if err != nil {
		return failWith(c, err, testimonialNotFound, "")
	}
	return respond(c, http.StatusCreated, testimonial)
}

// UpdateTestimonial godoc
// @Summary Update testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param testimonial body UpdateTestimonialRequest true "Fields to change"
// @Success 200 {object} DataResponse{data=model.Testimonial}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /testimonials/{id} [put]
func (h *TestimonialHandler) UpdateTestimonial(c echo.Context) error {
	id, err := pathID(c, testimonialNotFound)
	if err != nil {
		return err
	}
	var req UpdateTestimonialRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	testimonial, err := h.svc.Update(c.Request().Context(), id, service.TestimonialUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Position: req.Position,
		Message:  req.Message,
		Rating:   req.Rating,
		Image:    req.Image,
		Status:   req.Status,
	})
	if err != nil {
		return failWith(c, err, testimonialNotFound, "")
	}
	return respond(c, http.StatusOK, testimonial)
}

// DeleteTestimonial godoc
// @Summary Delete testimonial
// @Tags testimonials
// @Produce json
// @Param id path string true "Testimonial ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) DeleteTestimonial(c echo.Context) error {
	id, err := pathID(c, testimonialNotFound)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return failWith(c, err, testimonialNotFound, "")
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Testimonial deleted successfully"})
}
