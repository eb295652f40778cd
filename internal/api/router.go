package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ahmedshaban022/revelop-calendar/internal/api/handler"
	"github.com/ahmedshaban022/revelop-calendar/internal/api/middleware"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(auth ports.AuthService, sessions ports.SessionManager, bookings ports.BookingService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("revelop"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(auth, sessions)
	bookingHandler := handler.NewBookingHandler(bookings)
	healthHandler := handler.NewHealthHandler()

	// --- Auth routes (no session required) ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/session", authHandler.Session)

	// --- Admin routes (session required) ---
	admin := e.Group("/admin", middleware.RequireSession(sessions))
	admin.GET("/dashboard", bookingHandler.Dashboard)
	admin.POST("/bookings", bookingHandler.CreateBooking)

	// --- Probes and metrics ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
