package dto

import "homestay/internal/domains/room/model"

type RoomResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.ID = room.ID
	r.Label = room.Label
	r.Category = room.Category
}

type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

func (r *ListRoomsResponse) FromModels(rooms []model.Room) {
	r.Rooms = make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}

	r.Total = len(rooms)
}
