// Package mode holds the single active bulk-operation mode and turns discrete
// input events into intents for the session to apply.
package mode

import (
	"fmt"
	"strings"

	"tableflip.dev/chessboard/pkg/grid"
)

// Mode is the active operation context. At most one is active.
type Mode int

const (
	None Mode = iota
	Delete
	Move
	Copy
	Edit
	Select
)

var names = map[Mode]string{
	None:   "none",
	Delete: "delete",
	Move:   "move",
	Copy:   "copy",
	Edit:   "edit",
	Select: "select",
}

func (m Mode) String() string {
	if n, ok := names[m]; ok {
		return n
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func Parse(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, n := range names {
		if n == s {
			return m, nil
		}
	}
	return None, fmt.Errorf("mode: unknown mode %q", s)
}

// Target is the slot an input event landed on.
type Target struct {
	Coord  grid.Coord
	ID     int
	OnUnit bool
}

// At builds a Target for an occupied slot.
func At(c grid.Coord, id int) Target {
	return Target{Coord: c, ID: id, OnUnit: true}
}

// Empty builds a Target for an empty slot.
func Empty(c grid.Coord) Target {
	return Target{Coord: c}
}

type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
)

// Event is a discrete pointer input.
type Event struct {
	Kind   EventKind
	Target Target
}

type IntentKind int

const (
	NoIntent IntentKind = iota
	// Toggle flips the selection of ID.
	Toggle
	// PickSource marks ID as the pending move source.
	PickSource
	// Swap exchanges Source and ID.
	Swap
	// Lasso selects every unit in the rectangle From..To.
	Lasso
	// Place copies Source (or the selection when Source is 0) into To.
	Place
	// Open shows ID in an edit view.
	Open
)

// Intent is what an input asks the session to do.
type Intent struct {
	Kind   IntentKind
	ID     int
	Source int
	From   grid.Coord
	To     grid.Coord
}

type gestureKind int

const (
	lassoGesture gestureKind = iota
	dragGesture
)

// Gesture is an in-flight pointer interaction.
type Gesture struct {
	kind   gestureKind
	Source Target
	From   grid.Coord
	To     grid.Coord
}

// IsLasso reports whether the gesture draws a selection rectangle.
func (g Gesture) IsLasso() bool { return g.kind == lassoGesture }

// Controller is the mode state machine. Initial mode is None; there is no
// terminal state.
type Controller struct {
	mode      Mode
	source    int
	hasSource bool
	gesture   *Gesture
}

func NewController() *Controller {
	return &Controller{}
}

func (c *Controller) Mode() Mode { return c.mode }

// Gated reports whether mode-gated interactions are live.
func (c *Controller) Gated() bool { return c.mode != None }

// Activate switches to m, discarding any pending move source or gesture.
func (c *Controller) Activate(m Mode) {
	c.mode = m
	c.reset()
}

// Cancel returns to None. Callers clear the selection.
func (c *Controller) Cancel() {
	c.Activate(None)
}

// Confirm ends the active mode and returns it so the caller can apply its
// effect.
func (c *Controller) Confirm() Mode {
	m := c.mode
	c.Activate(None)
	return m
}

// MoveSource is the unit picked by the first click of a click-click move.
func (c *Controller) MoveSource() (int, bool) {
	return c.source, c.hasSource
}

// Gesture returns the in-flight pointer gesture, if any.
func (c *Controller) Gesture() (Gesture, bool) {
	if c.gesture == nil {
		return Gesture{}, false
	}
	return *c.gesture, true
}

func (c *Controller) reset() {
	c.source = 0
	c.hasSource = false
	c.gesture = nil
}

// Click handles a single click on a slot.
func (c *Controller) Click(t Target) Intent {
	switch c.mode {
	case None:
		return Intent{}
	case Move:
		if !t.OnUnit {
			return Intent{}
		}
		if !c.hasSource {
			c.source, c.hasSource = t.ID, true
			return Intent{Kind: PickSource, ID: t.ID}
		}
		src := c.source
		c.source, c.hasSource = 0, false
		if src == t.ID {
			return Intent{}
		}
		return Intent{Kind: Swap, Source: src, ID: t.ID}
	case Copy:
		if !t.OnUnit {
			return Intent{Kind: Place, To: t.Coord}
		}
		return Intent{Kind: Toggle, ID: t.ID}
	default:
		if !t.OnUnit {
			return Intent{}
		}
		return Intent{Kind: Toggle, ID: t.ID}
	}
}

// DoubleClick opens the unit regardless of mode.
func (c *Controller) DoubleClick(t Target) Intent {
	if !t.OnUnit {
		return Intent{}
	}
	return Intent{Kind: Open, ID: t.ID}
}

// Dispatch advances the pointer gesture state machine.
func (c *Controller) Dispatch(ev Event) Intent {
	switch ev.Kind {
	case PointerDown:
		c.gesture = nil
		switch c.mode {
		case Select, Delete:
			c.gesture = &Gesture{kind: lassoGesture, Source: ev.Target, From: ev.Target.Coord, To: ev.Target.Coord}
		case Move, Copy:
			if ev.Target.OnUnit {
				c.gesture = &Gesture{kind: dragGesture, Source: ev.Target, From: ev.Target.Coord, To: ev.Target.Coord}
			}
		}
		return Intent{}
	case PointerMove:
		if c.gesture != nil {
			c.gesture.To = ev.Target.Coord
		}
		return Intent{}
	case PointerUp:
		g := c.gesture
		c.gesture = nil
		if g == nil {
			return Intent{}
		}
		g.To = ev.Target.Coord
		if g.kind == lassoGesture {
			return Intent{Kind: Lasso, From: g.From, To: g.To}
		}
		switch c.mode {
		case Move:
			if ev.Target.OnUnit && ev.Target.ID != g.Source.ID {
				return Intent{Kind: Swap, Source: g.Source.ID, ID: ev.Target.ID}
			}
		case Copy:
			if !ev.Target.OnUnit {
				return Intent{Kind: Place, Source: g.Source.ID, To: ev.Target.Coord}
			}
		}
	}
	return Intent{}
}
