package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/service"
)

func TestProductHandler_CreateProduct(t *testing.T) {
	svc := new(MockProductService)
	h := NewProductHandler(svc)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Name == "Lamp" && p.Price.Equal(decimal.RequireFromString("19.99")) && p.Stock == 3
	})).Return(&model.Product{ID: uuid.New(), Name: "Lamp"}, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/products",
		`{"name":"Lamp","description":"Desk lamp","price":19.99,"category":"lighting","stock":3}`)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestProductHandler_CreateProduct_PriceRequired(t *testing.T) {
	svc := new(MockProductService)
	h := NewProductHandler(svc)

	c, _ := newRequestContext(newTestEcho(), http.MethodPost, "/api/products",
		`{"name":"Lamp","description":"Desk lamp","category":"lighting","stock":3}`)

	requireHTTPError(t, h.CreateProduct(c), http.StatusBadRequest, "Price is required")
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductHandler_CreateProduct_FreeProductAllowed(t *testing.T) {
	svc := new(MockProductService)
	h := NewProductHandler(svc)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Price.IsZero()
	})).Return(&model.Product{ID: uuid.New(), Name: "Sticker", Price: decimal.Zero}, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodPost, "/api/products",
		`{"name":"Sticker","description":"Free sticker","price":0,"category":"merch"}`)

	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":0`)
}

func TestProductHandler_GetProduct_NotFound(t *testing.T) {
	svc := new(MockProductService)
	h := NewProductHandler(svc)
	id := uuid.New()

	svc.On("Get", mock.Anything, id).Return(nil, errors.ErrNotFound)
	c, _ := newRequestContext(newTestEcho(), http.MethodGet, "/api/products/"+id.String(), "", "id", id.String())

	requireHTTPError(t, h.GetProduct(c), http.StatusNotFound, "Product not found")
}

func TestProductHandler_UpdateProduct_ValidationMessage(t *testing.T) {
	svc := new(MockProductService)
	h := NewProductHandler(svc)
	id := uuid.New()

	svc.On("Update", mock.Anything, id, mock.AnythingOfType("service.ProductUpdate")).
		Return(nil, errorsValidation("Price must be positive"))
	c, _ := newRequestContext(newTestEcho(), http.MethodPut, "/api/products/"+id.String(), `{"price":-1}`, "id", id.String())

	requireHTTPError(t, h.UpdateProduct(c), http.StatusBadRequest, "Price must be positive")
}

func TestTestimonialHandler_ListTestimonials(t *testing.T) {
	svc := new(MockTestimonialService)
	h := NewTestimonialHandler(svc)
	e := newTestEcho()

	svc.On("List", mock.Anything, "").Return([]model.Testimonial{{Name: "Ana", Status: model.TestimonialApproved}}, nil)
	c, rec := newRequestContext(e, http.MethodGet, "/api/testimonials", "")
	require.NoError(t, h.ListTestimonials(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"approved"`)

	svc.On("List", mock.Anything, "spam").Return(nil, errorsValidation(`unknown testimonial status "spam"`))
	c, _ = newRequestContext(e, http.MethodGet, "/api/testimonials?status=spam", "")
	requireHTTPError(t, h.ListTestimonials(c), http.StatusBadRequest, `unknown testimonial status "spam"`)
}

func TestTestimonialHandler_CreateTestimonial_RatingOutOfRange(t *testing.T) {
	svc := new(MockTestimonialService)
	h := NewTestimonialHandler(svc)

	c, _ := newRequestContext(newTestEcho(), http.MethodPost, "/api/testimonials",
		`{"name":"Ana","email":"ana@example.com","message":"Great","rating":9}`)

	require.Error(t, h.CreateTestimonial(c))
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestNewsletterHandler_Subscribe(t *testing.T) {
	svc := new(MockNewsletterService)
	h := NewNewsletterHandler(svc)
	e := newTestEcho()

	svc.On("Subscribe", mock.Anything, "reader@example.com").Return(&model.Subscriber{ID: uuid.New(), Email: "reader@example.com"}, nil).Once()
	c, rec := newRequestContext(e, http.MethodPost, "/api/newsletter", `{"email":"reader@example.com"}`)
	require.NoError(t, h.Subscribe(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	svc.On("Subscribe", mock.Anything, "reader@example.com").Return(nil, errors.ErrDuplicate).Once()
	c, _ = newRequestContext(e, http.MethodPost, "/api/newsletter", `{"email":"reader@example.com"}`)
	requireHTTPError(t, h.Subscribe(c), http.StatusBadRequest, "Email already subscribed")
}

func TestNewsletterHandler_DeleteSubscriber_NotFound(t *testing.T) {
	svc := new(MockNewsletterService)
	h := NewNewsletterHandler(svc)
	id := uuid.New()

	svc.On("Delete", mock.Anything, id).Return(errors.ErrNotFound)
	c, _ := newRequestContext(newTestEcho(), http.MethodDelete, "/api/newsletter/"+id.String(), "", "id", id.String())

	requireHTTPError(t, h.DeleteSubscriber(c), http.StatusNotFound, "Subscriber not found")
}

func TestStatsHandler_GetStats(t *testing.T) {
	svc := new(MockStatsService)
	h := NewStatsHandler(svc)

	stats := &service.Stats{}
	stats.Products.Total = 3
	stats.Newsletter.Total = 9
	svc.On("Get", mock.Anything).Return(stats, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/api/stats", "")
	require.NoError(t, h.GetStats(c))
	assert.JSONEq(t,
		`{"success":true,"data":{"products":{"total":3,"active":0},"users":{"total":0,"active":0},"newsletter":{"total":9},"testimonials":{"total":0}}}`,
		rec.Body.String())
}
