package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ahmedshaban022/revelop-calendar/internal/api/metrics"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Dashboard returns the joined calendar view: services, employees and
// bookings together, or an error — never a partial set.
//
// @Summary      Load the calendar dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /admin/dashboard [get]
func (h *BookingHandler) Dashboard(c echo.Context) error {
	start := time.Now()
	dashboard, err := h.bookings.LoadDashboard(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.DashboardLoadDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toDashboardResponse(dashboard))
}

// CreateBooking validates and submits a new booking.
//
// @Summary      Create a booking
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking form"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /admin/bookings [post]
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	booking, err := h.bookings.CreateBooking(c.Request().Context(), toBookingForm(req))
	if err != nil {
		return err
	}
	metrics.BookingsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, toBookingResponse(*booking))
}
