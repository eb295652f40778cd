package handler

import (
	"time"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
	"github.com/ahmedshaban022/revelop-calendar/internal/core/ports"
)

// --- Request → Service input ---

func toBookingForm(req createBookingRequest) ports.BookingForm {
	return ports.BookingForm{
		ServiceID:     req.ServiceID,
		EmployeeID:    req.EmployeeID,
		Start:         req.Start,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Notes:         req.Notes,
	}
}

// --- Domain → HTTP response ---

func toUserResponse(u domain.User) *userResponse {
	return &userResponse{
		ID:       u.ID,
		Email:    u.Email,
		Name:     u.Name,
		UserType: u.UserType,
		Phone:    u.Phone,
	}
}

func toServiceResponse(s domain.Service) serviceResponse {
	return serviceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.Duration,
		Price:       s.Price,
	}
}

func toEmployeeResponse(e domain.Employee) employeeResponse {
	return employeeResponse{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
		Phone: e.Phone,
		Photo: e.Photo,
	}
}

func toBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		EmployeeID:    b.EmployeeID,
		StartTime:     b.StartTime.UTC().Format(time.RFC3339),
		EndTime:       b.EndTime.UTC().Format(time.RFC3339),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		Notes:         b.Notes,
		Fabricated:    b.Fabricated,
	}
}

func toDashboardResponse(d *ports.Dashboard) dashboardResponse {
	resp := dashboardResponse{
		Services:  make([]serviceResponse, len(d.Services)),
		Employees: make([]employeeResponse, len(d.Employees)),
		Bookings:  make([]bookingResponse, len(d.Bookings)),
	}
	for i, s := range d.Services {
		resp.Services[i] = toServiceResponse(s)
	}
	for i, e := range d.Employees {
		resp.Employees[i] = toEmployeeResponse(e)
	}
	for i, b := range d.Bookings {
		resp.Bookings[i] = toBookingResponse(b)
	}
	return resp
}
