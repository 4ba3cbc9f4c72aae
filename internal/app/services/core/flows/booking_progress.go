package flows

import "anubha-web/internal/pkg/constvars"

var progressOrder = map[string]int{
	constvars.BookingProgressUserDetails: 1,
	constvars.BookingProgressRecall:      2,
	constvars.BookingProgressSlot:        3,
	constvars.BookingProgressPayment:     4,
}

// NextStepURL is where a pending appointment resumes. Unknown or empty progress restarts at recall.
func NextStepURL(progress string) string {
	switch progress {
	case constvars.BookingProgressUserDetails:
		return "/book/recall"
	case constvars.BookingProgressRecall:
		return "/book/slot"
	case constvars.BookingProgressSlot, constvars.BookingProgressPayment:
		return "/book/payment"
	default:
		return "/book/recall"
	}
}

func StepLabel(progress string) string {
	switch progress {
	case constvars.BookingProgressUserDetails:
		return "User Details"
	case constvars.BookingProgressRecall:
		return "Recall"
	case constvars.BookingProgressSlot:
		return "Slot Selection"
	case constvars.BookingProgressPayment:
		return "Payment"
	default:
		return "Start Booking"
	}
}

// AdvanceProgress allows staying on a step or moving forward, never back.
func AdvanceProgress(current, next string) (string, error) {
	nextRank, ok := progressOrder[next]
	if !ok {
		return current, transitions{}.illegal(State(current), EventAdvanceProgress)
	}
	if nextRank < progressOrder[current] {
		return current, transitions{}.illegal(State(current), EventAdvanceProgress)
	}
	return next, nil
}
