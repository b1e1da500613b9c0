package model

import (
	"regexp"
	"strings"
)

// Booking status labels as written into sheet cells. These are the only two
// labels the dashboard writes; historical cells may contain anything.
const (
	StatusConfirmed = "Đã đặt cọc"
	StatusPending   = "Đang đợi đặt cọc"
)

// StatusKind classifies a cell for display purposes only. Occupancy
// decisions never depend on it; a cell is occupied iff it is non-empty.
type StatusKind string

const (
	KindAvailable StatusKind = "available"
	KindPending   StatusKind = "pending"
	KindConfirmed StatusKind = "confirmed"
	KindBooked    StatusKind = "booked"
)

const descriptorSeparator = " - "

var depositPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// Compose builds the cell descriptor "<name> - <status>", appending
// " - <deposit>" only for a confirmed booking with a non-empty deposit.
func Compose(customerName, status, deposit string) string {
	descriptor := customerName + descriptorSeparator + status

	if status == StatusConfirmed && strings.TrimSpace(deposit) != "" {
		descriptor += descriptorSeparator + strings.TrimSpace(deposit)
	}

	return descriptor
}

// Details is the best-effort reading of a cell descriptor.
type Details struct {
	Kind         StatusKind `json:"kind"`
	CustomerName string     `json:"customer_name,omitempty"`
	Deposit      string     `json:"deposit,omitempty"`
}

// Parse classifies a raw cell value. Cells written by hand over the years
// follow loose conventions, so this is keyword matching, not a grammar:
// deposit-received wording means confirmed, waiting wording means pending,
// any other non-empty text is a generic booking. The deposit amount is only
// reported for confirmed cells.
func Parse(raw string) Details {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Details{Kind: KindAvailable}
	}

	details := Details{Kind: KindBooked}

	lower := strings.ToLower(trimmed)

	switch {
	case strings.Contains(lower, "đã đặt cọc"), strings.Contains(lower, "đã nhận cọc"):
		details.Kind = KindConfirmed
	case strings.Contains(lower, "đang đợi"), strings.Contains(lower, "chờ"):
		details.Kind = KindPending
	}

	details.CustomerName = strings.TrimSpace(strings.SplitN(trimmed, descriptorSeparator, 2)[0])

	if details.Kind == KindConfirmed {
		if match := depositPattern.FindString(trimmed); match != "" {
			details.Deposit = match
		}
	}

	return details
}
