// Package unit holds the real-estate unit record shown on the chessboard.
package unit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Unit is a single apartment or room at a floor/section coordinate.
type Unit struct {
	ID        int     `json:"id"`
	Floor     int     `json:"floor"`
	Section   int     `json:"section"`
	Stoak     int     `json:"stoak,omitempty"`
	Number    Number  `json:"number"`
	Area      float64 `json:"area"`
	RoomCount int     `json:"rooms"`
	Status    Status  `json:"status"`
}

// Number is a unit number. It decodes from either a JSON number or a numeric
// string and always encodes as a number.
type Number int

func (n *Number) UnmarshalJSON(b []byte) error {
	var i int
	if err := json.Unmarshal(b, &i); err == nil {
		*n = Number(i)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("unit: number: %w", err)
	}
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("unit: number %q: %w", s, err)
	}
	*n = Number(i)
	return nil
}

func (n Number) String() string {
	return strconv.Itoa(int(n))
}

// Clone returns a copy that shares nothing with u.
func (u *Unit) Clone() *Unit {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (u *Unit) IsFree() bool {
	return u != nil && u.Status == Free
}

func (u *Unit) String() string {
	return fmt.Sprintf("#%d %s floor %d section %d, %.1fm², %dk, %s",
		u.ID, u.Number, u.Floor, u.Section, u.Area, u.RoomCount, u.Status)
}

// ConventionalNumber is the number a fresh unit gets at a coordinate,
// e.g. floor 2 section 1 is 201.
func ConventionalNumber(floor, section int) Number {
	return Number(floor*100 + section)
}
