package model

import (
	"fmt"
	"strings"
)

const (
	CategoryBungalow = "bungalow"
	CategoryRoom     = "room"
)

// Room is one bookable unit. ID is the code written in the sheet's room
// column; Label is the display name shown to the owner.
type Room struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Defaults is the homestay's fixed inventory, used when no override is
// configured.
func Defaults() []Room {
	return []Room{
		{ID: "1001", Label: "Bungalow Lớn", Category: CategoryBungalow},
		{ID: "1002", Label: "Bungalow Nhỏ 1", Category: CategoryBungalow},
		{ID: "1003", Label: "Bungalow Nhỏ 2", Category: CategoryBungalow},
		{ID: "1004", Label: "Phòng Nhỏ", Category: CategoryRoom},
		{ID: "1005", Label: "Phòng Lớn 1", Category: CategoryRoom},
		{ID: "1006", Label: "Phòng Lớn 2", Category: CategoryRoom},
	}
}

// ParseRegistry parses a "code:label:category" list joined by ";", as set
// through configuration. An empty string yields the default inventory.
func ParseRegistry(raw string) ([]Room, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Defaults(), nil
	}

	entries := strings.Split(raw, ";")
	rooms := make([]Room, 0, len(entries))

	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid room entry %q, want code:label:category", entry)
		}

		category := strings.TrimSpace(parts[2])
		if category != CategoryBungalow && category != CategoryRoom {
			return nil, fmt.Errorf("invalid room category %q in entry %q", category, entry)
		}

		rooms = append(rooms, Room{
			ID:       strings.TrimSpace(parts[0]),
			Label:    strings.TrimSpace(parts[1]),
			Category: category,
		})
	}

	if len(rooms) == 0 {
		return nil, fmt.Errorf("room registry override %q contains no rooms", raw)
	}

	return rooms, nil
}
