package domain

// Service is a bookable treatment offered by the salon.
// Every service resolves to a non-empty display name even when the
// backend record omits one.
type Service struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Duration    int      `json:"duration,omitempty"` // minutes, 0 when unknown
	Price       *float64 `json:"price,omitempty"`
}
