package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"backoffice/internal/model"
	"backoffice/internal/service"
)

const productNotFound = "Product not found"

// ProductHandler serves the product catalogue.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler creates a handler layer.
func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// CreateProductRequest is the payload for creating a product.
type CreateProductRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description" validate:"required"`
	Price       *decimal.Decimal    `json:"price" validate:"required" swaggertype:"number"`
	Category    string              `json:"category" validate:"required"`
	Stock       int                 `json:"stock" validate:"gte=0"`
	Image       string              `json:"image" validate:"omitempty,url"`
	Status      model.ProductStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateProductRequest lists the fields a product update may change.
type UpdateProductRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	Price       *decimal.Decimal     `json:"price" swaggertype:"number"`
	Category    *string              `json:"category"`
	Stock       *int                 `json:"stock" validate:"omitempty,gte=0"`
	Image       *string              `json:"image"`
	Status      *model.ProductStatus `json:"status" validate:"omitempty,oneof=active inactive"`
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param search query string false "Match on name, description or category"
// @Success 200 {object} DataResponse{data=[]model.Product}
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.svc.List(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return failWith(c, err, productNotFound, "")
	}
	return respond(c, http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} DataResponse{data=model.Product}
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := pathID(c, productNotFound)
	if err != nil {
		return err
	}
	product, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return failWith(c, err, productNotFound, "")
	}
	return respond(c, http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product payload"
// @Success 201 {object} DataResponse{data=model.Product}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.svc.Create(c.Request().Context(), &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Status:      req.Status,
	})
	if err != nil {
		return failWith(c, err, productNotFound, "")
	}
	return respond(c, http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body UpdateProductRequest true "Fields to change"
// @Success 200 {object} DataResponse{data=model.Product}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c, productNotFound)
	if err != nil {
		return err
	}
	var req UpdateProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	product, err := h.svc.Update(c.Request().Context(), id, service.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		Status:      req.Status,
	})
	if err != nil {
		return failWith(c, err, productNotFound, "")
	}
	return respond(c, http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c, productNotFound)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return failWith(c, err, productNotFound, "")
	}
	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Product deleted successfully"})
}
