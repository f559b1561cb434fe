// Package grid derives the chessboard layout from a flat list of units.
//
// The index is a transient view: it is rebuilt from the unit list whenever the
// board is rendered and is never written back.
package grid

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"tableflip.dev/chessboard/pkg/unit"
)

// ErrInvalidCoordinate is returned for malformed grid references.
var ErrInvalidCoordinate = errors.New("grid: invalid coordinate")

// Axis is one of the coordinate fields of a unit.
type Axis int

const (
	Floor Axis = iota
	Section
	Stoak
)

func (a Axis) String() string {
	switch a {
	case Floor:
		return "floor"
	case Section:
		return "section"
	case Stoak:
		return "stoak"
	}
	return "axis(" + strconv.Itoa(int(a)) + ")"
}

func (a Axis) value(u *unit.Unit) int {
	switch a {
	case Section:
		return u.Section
	case Stoak:
		return u.Stoak
	default:
		return u.Floor
	}
}

// AxisValues returns the distinct values of axis across units, ascending.
func AxisValues(units []*unit.Unit, axis Axis) []int {
	seen := make(map[int]struct{}, len(units))
	values := make([]int, 0)
	for _, u := range units {
		if u == nil {
			continue
		}
		v := axis.value(u)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

// Layout selects how the axes map onto rows and columns.
type Layout string

const (
	// Flat puts floors on rows (ascending) and sections on columns.
	Flat Layout = "flat"
	// Sectioned renders one board per section with floors on rows (top floor
	// first) and stoaks on columns.
	Sectioned Layout = "sectioned"
)

func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", Flat:
		return Flat, nil
	case Sectioned, "sections", "3d":
		return Sectioned, nil
	}
	return Flat, fmt.Errorf("grid: unknown layout %q", s)
}

type Options struct {
	Layout Layout
	// FreeOnly hides units that are not free; they render as empty slots.
	FreeOnly bool
}

// Coord addresses a slot by axis values. Stoak is ignored by the flat layout.
type Coord struct {
	Floor   int
	Section int
	Stoak   int
}

func (c Coord) String() string {
	if c.Stoak != 0 {
		return fmt.Sprintf("s%df%dt%d", c.Section, c.Floor, c.Stoak)
	}
	return fmt.Sprintf("f%ds%d", c.Floor, c.Section)
}

// ParseCoord reads references such as "f1s2" or "s0f1t2". Floor and section
// are required, each letter may appear once.
func ParseCoord(ref string) (Coord, error) {
	ref = strings.ToLower(strings.TrimSpace(ref))
	var c Coord
	seen := map[byte]bool{}
	for i := 0; i < len(ref); {
		letter := ref[i]
		if letter != 'f' && letter != 's' && letter != 't' {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, ref)
		}
		if seen[letter] {
			return Coord{}, fmt.Errorf("%w: %q repeats %c", ErrInvalidCoordinate, ref, letter)
		}
		seen[letter] = true
		j := i + 1
		for j < len(ref) && ref[j] >= '0' && ref[j] <= '9' {
			j++
		}
		if j == i+1 {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, ref)
		}
		n, err := strconv.Atoi(ref[i+1 : j])
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, ref)
		}
		switch letter {
		case 'f':
			c.Floor = n
		case 's':
			c.Section = n
		case 't':
			c.Stoak = n
		}
		i = j
	}
	if !seen['f'] || !seen['s'] {
		return Coord{}, fmt.Errorf("%w: %q needs a floor and a section", ErrInvalidCoordinate, ref)
	}
	return c, nil
}

// Board is one rectangular grid of slots. The flat layout has a single board;
// the sectioned layout has one per section.
type Board struct {
	Section int
	RowAxis Axis
	ColAxis Axis
	Rows    []int
	Columns []int
}

// Coord returns the slot at row r, column c.
func (b Board) Coord(r, c int) (Coord, error) {
	if r < 0 || r >= len(b.Rows) || c < 0 || c >= len(b.Columns) {
		return Coord{}, fmt.Errorf("%w: row %d column %d", ErrInvalidCoordinate, r, c)
	}
	coord := Coord{Section: b.Section}
	set := func(a Axis, v int) {
		switch a {
		case Floor:
			coord.Floor = v
		case Section:
			coord.Section = v
		case Stoak:
			coord.Stoak = v
		}
	}
	set(b.RowAxis, b.Rows[r])
	set(b.ColAxis, b.Columns[c])
	return coord, nil
}

// Index is the 2D view over a unit list.
type Index struct {
	opts     Options
	units    []*unit.Unit
	floors   []int
	sections []int
	stoaks   []int
	slots    map[Coord]*unit.Unit
}

// New builds the index. The unit slice is only read.
func New(units []*unit.Unit, opts Options) *Index {
	if opts.Layout == "" {
		opts.Layout = Flat
	}
	ix := &Index{
		opts:     opts,
		units:    units,
		floors:   AxisValues(units, Floor),
		sections: AxisValues(units, Section),
		stoaks:   AxisValues(units, Stoak),
		slots:    make(map[Coord]*unit.Unit, len(units)),
	}
	for _, u := range units {
		if u == nil {
			continue
		}
		k := ix.key(Coord{Floor: u.Floor, Section: u.Section, Stoak: u.Stoak})
		if _, taken := ix.slots[k]; taken {
			continue
		}
		ix.slots[k] = u
	}
	return ix
}

func (ix *Index) Options() Options { return ix.opts }
func (ix *Index) Floors() []int    { return ix.floors }
func (ix *Index) Sections() []int  { return ix.sections }
func (ix *Index) Stoaks() []int    { return ix.stoaks }

// Rows and Columns describe the flat layout.
func (ix *Index) Rows() []int    { return ix.floors }
func (ix *Index) Columns() []int { return ix.sections }

func (ix *Index) key(c Coord) Coord {
	if ix.opts.Layout == Flat {
		c.Stoak = 0
	}
	return c
}

// At returns the visible unit in the slot, or false for an empty slot.
func (ix *Index) At(c Coord) (*unit.Unit, bool) {
	u, ok := ix.slots[ix.key(c)]
	if !ok || !ix.visible(u) {
		return nil, false
	}
	return u, true
}

// CellAt finds the unit at floor and section. In the sectioned layout the
// first stoak holding a unit wins.
func (ix *Index) CellAt(floor, section int) (*unit.Unit, bool) {
	if ix.opts.Layout == Flat {
		return ix.At(Coord{Floor: floor, Section: section})
	}
	for _, t := range ix.stoaks {
		if u, ok := ix.At(Coord{Floor: floor, Section: section, Stoak: t}); ok {
			return u, true
		}
	}
	return nil, false
}

// CellAt3 finds the unit at a three-axis coordinate.
func (ix *Index) CellAt3(section, floor, stoak int) (*unit.Unit, bool) {
	u, ok := ix.slots[Coord{Floor: floor, Section: section, Stoak: stoak}]
	if !ok || !ix.visible(u) {
		return nil, false
	}
	return u, true
}

// Hidden reports whether a unit occupies the slot but is filtered out.
func (ix *Index) Hidden(c Coord) bool {
	u, ok := ix.slots[ix.key(c)]
	return ok && !ix.visible(u)
}

// Occupied reports whether any unit, visible or not, holds the slot.
func (ix *Index) Occupied(c Coord) bool {
	_, ok := ix.slots[ix.key(c)]
	return ok
}

func (ix *Index) visible(u *unit.Unit) bool {
	return !ix.opts.FreeOnly || u.IsFree()
}

// Boards lists the rectangular boards to render, in display order.
func (ix *Index) Boards() []Board {
	if ix.opts.Layout == Flat {
		return []Board{{
			RowAxis: Floor,
			ColAxis: Section,
			Rows:    ix.floors,
			Columns: ix.sections,
		}}
	}
	topFirst := make([]int, len(ix.floors))
	for i, f := range ix.floors {
		topFirst[len(ix.floors)-1-i] = f
	}
	boards := make([]Board, 0, len(ix.sections))
	for _, s := range ix.sections {
		boards = append(boards, Board{
			Section: s,
			RowAxis: Floor,
			ColAxis: Stoak,
			Rows:    topFirst,
			Columns: ix.stoaks,
		})
	}
	return boards
}

// Region returns the ids of the visible units inside the rectangle spanned by
// a and b, in unit iteration order. It resolves a lasso gesture.
func (ix *Index) Region(a, b Coord) []int {
	lo := func(x, y int) int {
		if x < y {
			return x
		}
		return y
	}
	hi := func(x, y int) int {
		if x > y {
			return x
		}
		return y
	}
	ids := make([]int, 0)
	for _, u := range ix.units {
		if u == nil || !ix.visible(u) {
			continue
		}
		if u.Floor < lo(a.Floor, b.Floor) || u.Floor > hi(a.Floor, b.Floor) {
			continue
		}
		if u.Section < lo(a.Section, b.Section) || u.Section > hi(a.Section, b.Section) {
			continue
		}
		if ix.opts.Layout == Sectioned && (u.Stoak < lo(a.Stoak, b.Stoak) || u.Stoak > hi(a.Stoak, b.Stoak)) {
			continue
		}
		if got, ok := ix.slots[ix.key(Coord{Floor: u.Floor, Section: u.Section, Stoak: u.Stoak})]; !ok || got != u {
			continue
		}
		ids = append(ids, u.ID)
	}
	return ids
}
