// Package selection tracks which units are selected, independent of how the
// board is drawn.
package selection

import (
	"sort"

	"tableflip.dev/chessboard/pkg/unit"
)

// Source resolves the units header selections draw from.
type Source interface {
	Units() []*unit.Unit
	Get(id int) (*unit.Unit, bool)
}

// Set is a set of unit ids. Every id in it must exist in the Source; callers
// purge ids when units are removed.
type Set struct {
	src Source
	ids map[int]struct{}
}

func New(src Source) *Set {
	return &Set{src: src, ids: make(map[int]struct{})}
}

// Toggle adds id when absent and removes it when present. Unknown ids are
// ignored.
func (s *Set) Toggle(id int) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	if !s.exists(id) {
		return
	}
	s.ids[id] = struct{}{}
}

// Add selects the given ids, skipping unknown ones, and returns how many
// were newly added.
func (s *Set) Add(ids ...int) int {
	added := 0
	for _, id := range ids {
		if _, ok := s.ids[id]; ok || !s.exists(id) {
			continue
		}
		s.ids[id] = struct{}{}
		added++
	}
	return added
}

func (s *Set) SelectByFloor(floor int) int {
	return s.selectWhere(func(u *unit.Unit) bool { return u.Floor == floor })
}

func (s *Set) SelectBySection(section int) int {
	return s.selectWhere(func(u *unit.Unit) bool { return u.Section == section })
}

// SelectByStoak selects a riser within one section.
func (s *Set) SelectByStoak(section, stoak int) int {
	return s.selectWhere(func(u *unit.Unit) bool { return u.Section == section && u.Stoak == stoak })
}

func (s *Set) selectWhere(match func(*unit.Unit) bool) int {
	if s.src == nil {
		return 0
	}
	added := 0
	for _, u := range s.src.Units() {
		if u == nil || !match(u) {
			continue
		}
		if _, ok := s.ids[u.ID]; ok {
			continue
		}
		s.ids[u.ID] = struct{}{}
		added++
	}
	return added
}

func (s *Set) Clear() {
	s.ids = make(map[int]struct{})
}

// Purge drops ids of removed units.
func (s *Set) Purge(removed ...int) {
	for _, id := range removed {
		delete(s.ids, id)
	}
}

// Prune drops every id the Source no longer resolves.
func (s *Set) Prune() int {
	dropped := 0
	for id := range s.ids {
		if !s.exists(id) {
			delete(s.ids, id)
			dropped++
		}
	}
	return dropped
}

func (s *Set) Has(id int) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Set) Len() int { return len(s.ids) }

// IDs returns the selection in ascending order.
func (s *Set) IDs() []int {
	out := make([]int, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func (s *Set) exists(id int) bool {
	if s.src == nil {
		return false
	}
	_, ok := s.src.Get(id)
	return ok
}
