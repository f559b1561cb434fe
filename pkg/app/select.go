package app

import (
	"fmt"
	"strconv"
	"strings"
)

// Selector names units by id, floor, section or section riser. Criteria add
// up.
type Selector struct {
	IDs      []int
	Floors   []int
	Sections []int
	// Stoaks are "section/stoak" pairs.
	Stoaks []string
}

func (sel Selector) Empty() bool {
	return len(sel.IDs) == 0 && len(sel.Floors) == 0 && len(sel.Sections) == 0 && len(sel.Stoaks) == 0
}

// ParseStoak reads a "section/stoak" pair.
func ParseStoak(ref string) (section, stoak int, err error) {
	parts := strings.Split(strings.TrimSpace(ref), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("app: stoak %q, want section/stoak", ref)
	}
	if section, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("app: stoak %q: %w", ref, err)
	}
	if stoak, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("app: stoak %q: %w", ref, err)
	}
	return section, stoak, nil
}

// Select adds every unit sel names to the selection and returns the number
// added.
func (s *Session) Select(sel Selector) (int, error) {
	n := s.SelectIDs(sel.IDs...)
	for _, f := range sel.Floors {
		n += s.SelectFloor(f)
	}
	for _, sec := range sel.Sections {
		n += s.SelectSection(sec)
	}
	for _, ref := range sel.Stoaks {
		sec, st, err := ParseStoak(ref)
		if err != nil {
			return n, err
		}
		n += s.SelectStoak(sec, st)
	}
	return n, nil
}
