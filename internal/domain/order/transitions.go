package order

import (
	"fmt"

	"marketplace-core/internal/pkg/errs"
)

// transitions is the complete lifecycle table. Edges out of StatusDispute are reserved for Settle.
var transitions = map[Status][]Status{
	StatusCreated:              {StatusPaid, StatusCancelled, StatusExpired},
	StatusPaid:                 {StatusMeetupScheduled, StatusLabelReady, StatusRefunded, StatusDispute},
	StatusMeetupScheduled:      {StatusAwaitingConfirmation, StatusDispute, StatusCancelled},
	StatusLabelReady:           {StatusInTransit},
	StatusInTransit:            {StatusAwaitingConfirmation, StatusDispute},
	StatusAwaitingConfirmation: {StatusCompleted, StatusDispute},
	StatusDispute:              {StatusRefunded, StatusCompleted, StatusCancelled},
	StatusCompleted:            {},
	StatusCancelled:            {},
	StatusRefunded:             {},
	StatusExpired:              {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Statuses lists every lifecycle status in table order.
func Statuses() []Status {
	return []Status{
		StatusCreated, StatusPaid, StatusMeetupScheduled, StatusLabelReady, StatusInTransit,
		StatusAwaitingConfirmation, StatusCompleted, StatusCancelled, StatusRefunded, StatusDispute, StatusExpired,
	}
}

func InFlightStatuses() []Status {
	var out []Status
	for _, s := range Statuses() {
		if s.IsInFlight() {
			out = append(out, s)
		}
	}
	return out
}

func illegal(from, to Status) error {
	return errs.InvalidTransition(fmt.Sprintf("order cannot move from %s to %s", from, to))
}

func checkTransition(from, to Status) error {
	if from == StatusDispute {
		return ErrLeaveDispute
	}
	if !CanTransition(from, to) {
		return illegal(from, to)
	}
	return nil
}

func checkSettlement(from, to Status) error {
	if from != StatusDispute {
		return illegal(from, to)
	}
	if !CanTransition(from, to) {
		return illegal(from, to)
	}
	return nil
}
