package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/model"
	"backoffice/internal/service"
)

const (
	subscriberNotFound = "Subscriber not found"
	alreadySubscribed  = "Email already subscribed"
)

// NewsletterHandler serves the mailing list.
type NewsletterHandler struct {
	svc service.NewsletterService
}

// NewNewsletterHandler creates a handler layer.
func NewNewsletterHandler(svc service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

// SubscribeRequest is the public subscription payload.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateSubscriberRequest lists the fields a subscriber update may change.
type UpdateSubscriberRequest struct {
	Email  *string                 `json:"email" validate:"omitempty,email"`
	Status *model.SubscriberStatus `json:"status" validate:"omitempty,oneof=subscribed unsubscribed"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Subscriber email"
// @Success 201 {object} DataResponse{data=model.Subscriber}
// @Failure 400 {object} errors.ErrorResponse
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	subscriber, err := h.svc.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return failWith(c, err, subscriberNotFound, alreadySubscribed)
	}
	return c.JSON(http.StatusCreated, DataResponse{
		Success: true,
		Data:    subscriber,
		Message: "Successfully subscribed to newsletter",
	})
}

// ListSubscribers godoc
// @Summary List subscribers
// @Tags newsletter
// @Produce json
// @Param search query string false "Match on email"
// @Success 200 {object} DataResponse{data=[]model.Subscriber}
// @Failure 401 {object} errors.ErrorResponse
// @Router /newsletter [get]
func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	subscribers, err := h.svc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return failWith(c, err, subscriberNotFound, alreadySubscribed)
	}
	return respond(c, http.StatusOK, subscribers)
}

// GetSubscriber godoc
// @Summary Get subscriber by id
// @Tags newsletter
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} DataResponse{data=model.Subscriber}
// @Failure 404 {object} errors.ErrorResponse
// @Router /newsletter/{id} [get]
func (h *NewsletterHandler) GetSubscriber(c echo.Context) error {
	id, err := pathID(c, subscriberNotFound)
	if err != nil {
		return err
	}
	subscriber, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return failWith(c, err, subscriberNotFound, alreadySubscribed)
	}
	return respond(c, http.StatusOK, subscriber)
}

// UpdateSubscriber godoc
// @Summary Update subscriber
// @Tags newsletter
// @Accept json
// @Produce json
// @Param id path string true "Subscriber ID"
// @Param request body UpdateSubscriberRequest true "Fields to change"
// @Success 200 {object} DataResponse{data=model.Subscriber}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /newsletter/{id} [put]
func (h *NewsletterHandler) UpdateSubscriber(c echo.Context) error {
	id, err := pathID(c, subscriberNotFound)
	if err != nil {
		return err
	}
	var req UpdateSubscriberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	subscriber, err := h.svc.Update(c.Request().Context(), id, service.SubscriberUpdate{
		Email:  req.Email,
		Status: req.Status,
	})
	if err != nil {
		return failWith(c, err, subscriberNotFound, alreadySubscribed)
	}
	return respond(c, http.StatusOK, subscriber)
}

// DeleteSubscriber godoc
// @Summary Delete subscriber
// @Tags newsletter
// @Produce json
// @Param id path string true "Subscriber ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /newsletter/{id} [delete]
func (h *NewsletterHandler) DeleteSubscriber(c echo.Context) error {
	id, err := pathID(c, subscriberNotFound)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return failWith(c, err, subscriberNotFound, alreadySubscribed)
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Subscriber deleted successfully"})
}
