package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"backoffice/internal/auth"
	"backoffice/internal/handler"
	"backoffice/internal/metrics"
)

// Handlers groups the HTTP handlers mounted by Register.
type Handlers struct {
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Products     *handler.ProductHandler
	Testimonials *handler.TestimonialHandler
	Newsletter   *handler.NewsletterHandler
	Stats        *handler.StatsHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, log *slog.Logger, sessions *auth.SessionManager, m *metrics.Metrics, h Handlers) {
	e.HideBanner = true
	e.JSONSerializer = strictJSONSerializer{}
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errorHandler(e)

	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(middleware.Recover())
	if m != nil {
		e.Use(m.Middleware())
		e.GET("/metrics", m.Handler())
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/clear-session", h.Auth.ClearSession)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/auth/me", h.Auth.Me)
	api.POST("/auth/logout", h.Auth.Logout)
	api.GET("/products", h.Products.ListProducts)
	api.GET("/products/:id", h.Products.GetProduct)
	api.GET("/testimonials", h.Testimonials.ListTestimonials)
	api.GET("/testimonials/:id", h.Testimonials.GetTestimonial)
	api.POST("/newsletter", h.Newsletter.Subscribe)

	// Secured routes (require a session cookie). The guard is attached per route so
	// unknown paths keep echo's 404/405 handling.
	guard := auth.Guard(sessions)

	api.GET("/users", h.Users.ListUsers, guard)
	api.POST("/users", h.Users.CreateUser, guard)
	api.GET("/users/:id", h.Users.GetUser, guard)
	api.PUT("/users/:id", h.Users.UpdateUser, guard)
	api.DELETE("/users/:id", h.Users.DeleteUser, guard)

	api.POST("/products", h.Products.CreateProduct, guard)
	api.PUT("/products/:id", h.Products.UpdateProduct, guard)
	api.DELETE("/products/:id", h.Products.DeleteProduct, guard)

	api.POST("/testimonials", h.Testimonials.CreateTestimonial, guard)
	api.PUT("/testimonials/:id", h.Testimonials.UpdateTestimonial, guard)
	api.DELETE("/testimonials/:id", h.Testimonials.DeleteTestimonial, guard)

	api.GET("/newsletter", h.Newsletter.ListSubscribers, guard)
	api.GET("/newsletter/:id", h.Newsletter.GetSubscriber, guard)
	api.PUT("/newsletter/:id", h.Newsletter.UpdateSubscriber, guard)
	api.DELETE("/newsletter/:id", h.Newsletter.DeleteSubscriber, guard)

	api.GET("/stats", h.Stats.GetStats, guard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			log.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
