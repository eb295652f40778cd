package normalize

import (
	"strings"
	"time"

	"github.com/ahmedshaban022/revelop-calendar/internal/core/domain"
)

const (
	unnamedService  = "Unnamed Service"
	unknownEmployee = "Unknown Employee"

	// unknownServiceID and unknownEmployeeID mark bookings whose foreign
	// keys could not be resolved; stale backend data produces these.
	unknownServiceID  = "service-unknown"
	unknownEmployeeID = "employee-unknown"

	defaultDuration = 60 * time.Minute
)

// Service normalizes a raw service record.
func Service(raw Raw) domain.Service {
	svc := domain.Service{
		ID:          ID(raw.first("id", "service_id"), FallbackID()),
		Name:        raw.str("name", "title"),
		Description: raw.str("description"),
	}
	if svc.Name == "" {
		svc.Name = unnamedService
	}
	if d, ok := minutes(raw.first("duration", "duration_minutes", "default_duration")); ok {
		svc.Duration = d
	}
	if p, ok := number(raw.first("price")); ok && p >= 0 {
		svc.Price = &p
	}
	return svc
}

// Employee normalizes a raw employee record. The display name falls back
// to joined first/last name parts, then to a fixed placeholder.
func Employee(raw Raw) domain.Employee {
	emp := domain.Employee{
		ID:    ID(raw.first("id", "employee_id"), FallbackID()),
		Name:  raw.str("name"),
		Email: raw.str("email", "contact_email"),
		Phone: raw.str("phone", "contact_phone"),
		Photo: raw.str("photo", "avatar", "profile_picture"),
	}
	if emp.Name == "" {
		parts := make([]string, 0, 2)
		for _, k := range []string{"first_name", "last_name"} {
			if p := raw.str(k); p != "" {
				parts = append(parts, p)
			}
		}
		emp.Name = strings.Join(parts, " ")
	}
	if emp.Name == "" {
		emp.Name = unknownEmployee
	}
	return emp
}

// Booking normalizes a raw booking record. Normalization is total: missing
// or unparseable instants degrade to fabricated defaults (start = now,
// end = start + service duration or one hour) and the Fabricated flag is
// set so callers can tell trustworthy records from synthesized ones.
func Booking(raw Raw) domain.Booking {
	b := domain.Booking{
		CustomerName:  customerField(raw, "customerName", "customer_name", "client_name", "name"),
		CustomerEmail: customerField(raw, "customerEmail", "customer_email", "client_email", "email"),
		CustomerPhone: customerField(raw, "customerPhone", "customer_phone", "client_phone", "phone"),
		Notes:         raw.str("notes", "remarks"),
	}

	id, ok := stringID(raw.first("id", "booking_id"))
	if !ok {
		id = FallbackID()
		b.Fabricated = true
	}
	b.ID = id

	service := raw.sub("service")
	b.ServiceID = ID(raw.first("serviceId", "service_id"), "")
	if b.ServiceID == "" && service != nil {
		b.ServiceID = ID(service.first("id"), "")
	}
	if b.ServiceID == "" {
		b.ServiceID = unknownServiceID
	}

	b.EmployeeID = ID(raw.first("employeeId", "employee_id"), "")
	if b.EmployeeID == "" {
		if employee := raw.sub("employee"); employee != nil {
			b.EmployeeID = ID(employee.first("id"), "")
		}
	}
	if b.EmployeeID == "" {
		b.EmployeeID = unknownEmployeeID
	}

	now := time.Now().UTC()
	rawStart := raw.first("startTime", "start_time", "start", "booking_time")
	start, startOK := Instant(rawStart)
	if !startOK {
		// Silent data-quality compromise: a booking with no usable start
		// is pinned to the current instant rather than dropped.
		start = now
		b.Fabricated = true
	}
	b.StartTime = start.UTC()

	duration := defaultDuration
	durationKnown := false
	if service != nil {
		if d, ok := minutes(service.first("duration")); ok {
			duration = time.Duration(d) * time.Minute
			durationKnown = true
		}
	}
	if !durationKnown {
		if d, ok := minutes(raw.first("duration")); ok {
			duration = time.Duration(d) * time.Minute
		}
	}

	if end, ok := Instant(raw.first("endTime", "end_time")); ok && !end.Before(start) {
		b.EndTime = end.UTC()
	} else if rawStart != nil && !startOK {
		b.EndTime = now.Add(time.Hour)
	} else {
		b.EndTime = b.StartTime.Add(duration)
	}

	return b
}

// customerField resolves a contact field from flat alternates or the
// nested customer sub-object.
func customerField(raw Raw, camel, snake, client, nested string) string {
	if v := raw.str(camel, snake, client); v != "" {
		return v
	}
	if customer := raw.sub("customer"); customer != nil {
		return customer.str(nested)
	}
	return ""
}
