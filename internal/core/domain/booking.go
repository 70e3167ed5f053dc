package domain

import "time"

// DateLayout is the calendar-date wire format for check-in and check-out.
const DateLayout = "2006-01-02"

// Booking is a reservation of the inn for a half-open date range
// [StartDate, EndDate): the check-out day is free for the next guest's
// check-in.
type Booking struct {
	ID               string          `json:"id"`
	OwnerAccountID   string          `json:"ownerAccountId"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	Description      string          `json:"description"`
	OptionSelections map[string]bool `json:"optionSelections"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// Overlaps reports whether the half-open interval [start, end) intersects
// the booking's own interval. Dates are ISO YYYY-MM-DD strings, so
// lexicographic order equals chronological order.
func (b *Booking) Overlaps(start, end string) bool {
	return start < b.EndDate && b.StartDate < end
}
