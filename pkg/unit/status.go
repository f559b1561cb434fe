package unit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the sale state of a unit.
type Status int

const (
	Free Status = iota
	Sold
	Reserved
)

// Glyph describes how a status is printed and which words select it.
type Glyph struct {
	Status  Status
	Noun    string
	Symbol  string
	Short   string
	Meaning string
	Aliases []string
}

func DefaultStatuses() []Glyph {
	return []Glyph{{
		Status:  Free,
		Noun:    "free",
		Symbol:  "○",
		Short:   "FREE",
		Meaning: "available for sale",
		Aliases: []string{"available", "свободно", "своб"},
	}, {
		Status:  Sold,
		Noun:    "sold",
		Symbol:  "●",
		Short:   "SOLD",
		Meaning: "sold",
		Aliases: []string{"продано", "прод"},
	}, {
		Status:  Reserved,
		Noun:    "reserved",
		Symbol:  "◐",
		Short:   "RSVD",
		Meaning: "reserved, not yet sold",
		Aliases: []string{"blocked", "booked", "забронировано", "забр"},
	}}
}

func (s Status) Glyph() Glyph {
	all := DefaultStatuses()
	if int(s) < 0 || int(s) >= len(all) {
		return Glyph{Status: s, Noun: "unknown", Symbol: "?", Short: "????"}
	}
	return all[s]
}

func (s Status) String() string {
	return s.Glyph().Noun
}

// StatusForAlias resolves a noun or alias, case-insensitively.
func StatusForAlias(alias string) (Status, error) {
	a := strings.ToLower(strings.TrimSpace(alias))
	for _, g := range DefaultStatuses() {
		if a == g.Noun {
			return g.Status, nil
		}
		for _, al := range g.Aliases {
			if a == al {
				return g.Status, nil
			}
		}
	}
	return Free, fmt.Errorf("unit: unknown status %q", alias)
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		var n int
		if err2 := json.Unmarshal(b, &n); err2 != nil {
			return err
		}
		if n < int(Free) || n > int(Reserved) {
			return fmt.Errorf("unit: status %d out of range", n)
		}
		*s = Status(n)
		return nil
	}
	st, err := StatusForAlias(str)
	if err != nil {
		return err
	}
	*s = st
	return nil
}
