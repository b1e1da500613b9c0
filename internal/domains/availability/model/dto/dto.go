package dto

import bookingModel "homestay/internal/domains/booking/model"

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
	StatusUnknown   = "unknown"
)

type RoomAvailabilityResponse struct {
	RoomID    string                `json:"room_id"`
	Date      string                `json:"date"`
	Available bool                  `json:"available"`
	RawValue  string                `json:"raw_value,omitempty"`
	Details   *bookingModel.Details `json:"details,omitempty"`
}

// RoomDayStatus is one room's state on a given day. Status is "unknown"
// when the room has no row in the sheet.
type RoomDayStatus struct {
	RoomID   string                `json:"room_id"`
	Label    string                `json:"label"`
	Status   string                `json:"status"`
	RawValue string                `json:"raw_value,omitempty"`
	Details  *bookingModel.Details `json:"details,omitempty"`
}

type DateAvailabilityResponse struct {
	Date           string          `json:"date"`
	Rooms          []RoomDayStatus `json:"rooms"`
	AvailableCount int             `json:"available_count"`
	OccupiedCount  int             `json:"occupied_count"`
}

// MonthDayCell is one day of one room in the month view. Days without a
// header column in the sheet are reported as empty available cells.
type MonthDayCell struct {
	Date      string                `json:"date"`
	Available bool                  `json:"available"`
	RawValue  string                `json:"raw_value,omitempty"`
	Details   *bookingModel.Details `json:"details,omitempty"`
}

type MonthRoomSchedule struct {
	RoomID string         `json:"room_id"`
	Label  string         `json:"label"`
	Days   []MonthDayCell `json:"days"`
}

type MonthResponse struct {
	Month string              `json:"month"`
	Rooms []MonthRoomSchedule `json:"rooms"`
}
