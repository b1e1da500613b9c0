package dto

import (
	"homestay/internal/domains/booking/model"
)

// CreateBookingRequest books one stay across one or more rooms. FromDate is
// the check-in day in DD/MM/YYYY; Nights is the number of consecutive days
// to mark starting there. ConfirmOverwrite must be resent as true after a
// conflict response to overwrite the listed cells.
type CreateBookingRequest struct {
	RoomIDs          []string `json:"room_ids" validate:"required,min=1,dive,required"`
	FromDate         string   `json:"from_date" validate:"required,bookdate"`
	Nights           int      `json:"nights" validate:"required,min=1,max=30"`
	CustomerName     string   `json:"customer_name" validate:"required"`
	Status           string   `json:"status" validate:"required"`
	Deposit          string   `json:"deposit"`
	ConfirmOverwrite bool     `json:"confirm_overwrite"`
}

// ConflictDetail reports one occupied target cell.
type ConflictDetail struct {
	RoomID       string `json:"room_id"`
	Date         string `json:"date"`
	CurrentValue string `json:"current_value"`
}

type CreateBookingResponse struct {
	UpdatedCells         int              `json:"updated_cells"`
	Descriptor           string           `json:"descriptor,omitempty"`
	Warnings             []string         `json:"warnings,omitempty"`
	RequiresConfirmation bool             `json:"requires_confirmation,omitempty"`
	Conflicts            []ConflictDetail `json:"conflicts,omitempty"`
}

type RemoveBookingRequest struct {
	RoomID string `json:"room_id" validate:"required"`
	Date   string `json:"date" validate:"required,bookdate"`
}

type RemoveBookingResponse struct {
	RoomID       string `json:"room_id"`
	Date         string `json:"date"`
	Cell         string `json:"cell"`
	RemovedValue string `json:"removed_value"`
}

// FindBookingResponse describes what currently occupies a cell, used by the
// removal flow to show the owner what they are about to delete.
type FindBookingResponse struct {
	RoomID    string         `json:"room_id"`
	Date      string         `json:"date"`
	Cell      string         `json:"cell"`
	Available bool           `json:"available"`
	RawValue  string         `json:"raw_value,omitempty"`
	Details   *model.Details `json:"details,omitempty"`
}
