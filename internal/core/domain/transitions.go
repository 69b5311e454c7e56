package domain

import "strings"

type TransitionMode string

const (
	TransitionsStrict TransitionMode = "strict"
	// TransitionsFree lets any status be set from any other, as the front desk did historically.
	TransitionsFree TransitionMode = "free"
)

var statusTransitions = map[BookingStatus][]BookingStatus{
	BookingPencil:    {BookingConfirmed, BookingCheckedIn, BookingNoShow, BookingCancelled},
	BookingConfirmed: {BookingCheckedIn, BookingNoShow, BookingCancelled},
	BookingCheckedIn: {},
	BookingNoShow:    {},
	BookingCancelled: {},
}

func ParseTransitionMode(s string) (TransitionMode, error) {
	switch mode := TransitionMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "", TransitionsStrict:
		return TransitionsStrict, nil
	case TransitionsFree:
		return mode, nil
	}
	return "", Validationf("unknown status transition mode %q", s)
}

// Allows reports whether a booking may move from one status to another.
// Re-setting the current status is always allowed.
func (m TransitionMode) Allows(from, to BookingStatus) bool {
	if !to.IsValid() {
		return false
	}
	if from == to || m == TransitionsFree {
		return true
	}
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}
