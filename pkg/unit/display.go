package unit

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayMode selects which attribute a chessboard cell shows.
type DisplayMode string

const (
	ShowNumber DisplayMode = "number"
	ShowArea   DisplayMode = "area"
	ShowRooms  DisplayMode = "rooms"
)

func DisplayModes() []DisplayMode {
	return []DisplayMode{ShowNumber, ShowArea, ShowRooms}
}

func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ShowNumber:
		return ShowNumber, nil
	case ShowArea:
		return ShowArea, nil
	case ShowRooms, "roomcount":
		return ShowRooms, nil
	}
	return ShowNumber, fmt.Errorf("unit: unknown display mode %q", s)
}

// Display renders the cell text for u.
func (m DisplayMode) Display(u *Unit) string {
	if u == nil {
		return ""
	}
	switch m {
	case ShowArea:
		return strconv.FormatFloat(u.Area, 'f', -1, 64) + "m²"
	case ShowRooms:
		return strconv.Itoa(u.RoomCount) + "k"
	default:
		return u.Number.String()
	}
}
