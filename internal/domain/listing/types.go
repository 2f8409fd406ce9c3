package listing

type Status string

const (
	StatusDraft         Status = "draft"
	StatusPendingReview Status = "pending_review"
	StatusPublished     Status = "published"
	StatusRejected      Status = "rejected"
	StatusReserved      Status = "reserved"
	StatusSold          Status = "sold"
	StatusArchived      Status = "archived"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusArchived
}

var transitions = map[Status][]Status{
	StatusDraft:         {StatusPendingReview, StatusArchived},
	StatusPendingReview: {StatusPublished, StatusRejected, StatusArchived},
	StatusRejected:      {StatusPendingReview, StatusArchived},
	StatusPublished:     {StatusReserved, StatusPendingReview, StatusArchived, StatusSold},
	StatusReserved:      {StatusPublished, StatusSold},
	StatusSold:          {},
	StatusArchived:      {},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// DeriveStatus is the availability rule: a hold (active reservation or in-flight order)
// moves published to reserved and its absence moves reserved back to published.
// Moderation and terminal statuses are returned unchanged.
func DeriveStatus(current Status, hasActiveHold bool) Status {
	switch {
	case current == StatusPublished && hasActiveHold:
		return StatusReserved
	case current == StatusReserved && !hasActiveHold:
		return StatusPublished
	default:
		return current
	}
}
