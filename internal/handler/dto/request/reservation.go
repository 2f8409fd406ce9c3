package request

import "time"

// CreateReservationRequest asks for a hold; omitting hold_minutes uses the configured default.
type CreateReservationRequest struct {
	HoldMinutes *int `json:"hold_minutes,omitempty" binding:"omitempty,gt=0"`
}

func (r CreateReservationRequest) Hold() time.Duration {
	if r.HoldMinutes == nil {
		return 0
	}
	return time.Duration(*r.HoldMinutes) * time.Minute
}
