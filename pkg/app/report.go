package app

import (
	"sort"

	"tableflip.dev/chessboard/pkg/unit"
)

// ReportSection groups the units of one section.
type ReportSection struct {
	Section  int
	Units    int
	ByStatus map[unit.Status]int
	Area     float64
	FreeArea float64
}

// ReportResult summarizes the whole board.
type ReportResult struct {
	Sections []ReportSection
	Total    int
	ByStatus map[unit.Status]int
	Area     float64
	Selected int
	Changed  int
}

// Report returns per-section counts and areas, sections ascending.
func (s *Session) Report() ReportResult {
	res := ReportResult{ByStatus: map[unit.Status]int{}}
	bySection := map[int]*ReportSection{}
	for _, u := range s.units.Units() {
		sec, ok := bySection[u.Section]
		if !ok {
			sec = &ReportSection{Section: u.Section, ByStatus: map[unit.Status]int{}}
			bySection[u.Section] = sec
		}
		sec.Units++
		sec.ByStatus[u.Status]++
		sec.Area += u.Area
		if u.IsFree() {
			sec.FreeArea += u.Area
		}
		res.Total++
		res.ByStatus[u.Status]++
		res.Area += u.Area
	}
	for _, sec := range bySection {
		res.Sections = append(res.Sections, *sec)
	}
	sort.Slice(res.Sections, func(i, j int) bool {
		return res.Sections[i].Section < res.Sections[j].Section
	})
	res.Selected = s.sel.Len()
	res.Changed = len(s.swaps.Changed())
	return res
}
