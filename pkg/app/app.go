package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/chessboard/pkg/actionlog"
	"tableflip.dev/chessboard/pkg/grid"
	"tableflip.dev/chessboard/pkg/logging"
	"tableflip.dev/chessboard/pkg/mode"
	"tableflip.dev/chessboard/pkg/selection"
	"tableflip.dev/chessboard/pkg/store"
	"tableflip.dev/chessboard/pkg/swap"
	"tableflip.dev/chessboard/pkg/unit"
	"tableflip.dev/chessboard/pkg/unitstore"
)

var (
	// ErrOccupied is returned when a unit would land on a slot that already
	// holds one.
	ErrOccupied = errors.New("app: slot is occupied")
	// ErrNoSource is returned by Copy when no single source unit is known.
	ErrNoSource = errors.New("app: copy needs exactly one source unit")
	// ErrInvalidBoard is returned for generated board dimensions outside
	// 1..9 floors and stoaks, or fewer than one section.
	ErrInvalidBoard = errors.New("app: board needs at least one section and 1 to 9 floors and stoaks")
)

// Options configure a Session.
type Options struct {
	Persistence store.Persistence
	Logger      *zap.Logger
	// Confirmer gates swaps. Nil lets every swap through.
	Confirmer swap.Confirmer
	Display   unit.DisplayMode
	Grid      grid.Options
}

// Session composes the unit store, selection, mode controller, swap engine and
// action log. It provides the operations both the CLI and the terminal UI
// drive. Every committed mutation is persisted before the call returns.
type Session struct {
	p       store.Persistence
	log     *zap.Logger
	units   *unitstore.Store
	sel     *selection.Set
	modes   *mode.Controller
	swaps   *swap.Engine
	actions *actionlog.Log

	display unit.DisplayMode
	gridOpt grid.Options
}

func New(opts Options) *Session {
	log := logging.OrNop(opts.Logger)
	units := unitstore.New(opts.Persistence, log.Named("units"))
	actions := actionlog.New(opts.Persistence, log.Named("actions"))
	swaps := swap.New(units, actions, opts.Persistence, log.Named("swap"))
	swaps.SetConfirmer(opts.Confirmer)
	display := opts.Display
	if display == "" {
		display = unit.ShowNumber
	}
	return &Session{
		p:       opts.Persistence,
		log:     log,
		units:   units,
		sel:     selection.New(units),
		modes:   mode.NewController(),
		swaps:   swaps,
		actions: actions,
		display: display,
		gridOpt: opts.Grid,
	}
}

// Load reads units, the action log and preferences. On storage failure the
// session still holds the seed board and the returned error wraps
// unitstore.ErrStorageUnavailable.
func (s *Session) Load(ctx context.Context) error {
	var errs []error
	if err := s.units.Load(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.actions.Load(ctx); err != nil {
		errs = append(errs, storageErr(err))
	}
	if err := s.swaps.LoadPreferences(ctx); err != nil {
		errs = append(errs, storageErr(err))
	}
	s.sel.Prune()
	return errors.Join(errs...)
}

// Reload re-reads stored state after an outside change and drops selected ids
// that no longer exist. A failed read keeps the current state; the seed board
// is only ever used by Load.
func (s *Session) Reload(ctx context.Context) error {
	var errs []error
	if err := s.units.Reload(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.actions.Load(ctx); err != nil {
		errs = append(errs, storageErr(err))
	}
	if err := s.swaps.LoadPreferences(ctx); err != nil {
		errs = append(errs, storageErr(err))
	}
	s.sel.Prune()
	return errors.Join(errs...)
}

// Watch subscribes to persistence change events.
func (s *Session) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.p.Watch(ctx)
}

func storageErr(err error) error {
	if errors.Is(err, unitstore.ErrStorageUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", unitstore.ErrStorageUnavailable, err)
}

func (s *Session) persist(ctx context.Context) error {
	var errs []error
	if err := s.units.Save(ctx); err != nil {
		errs = append(errs, err)
	}
	if err := s.actions.Save(ctx); err != nil {
		errs = append(errs, storageErr(err))
	}
	if err := errors.Join(errs...); err != nil {
		s.log.Warn("persist failed, continuing in memory", zap.Error(err))
		return err
	}
	return nil
}

// Units returns the live records in iteration order.
func (s *Session) Units() []*unit.Unit { return s.units.Units() }

// Unit looks up a single record.
func (s *Session) Unit(id int) (*unit.Unit, error) {
	u, ok := s.units.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", unitstore.ErrNotFound, id)
	}
	return u, nil
}

func (s *Session) Mode() mode.Mode { return s.modes.Mode() }

func (s *Session) MoveSource() (int, bool) { return s.modes.MoveSource() }

func (s *Session) Gesture() (mode.Gesture, bool) { return s.modes.Gesture() }

func (s *Session) Selection() []int { return s.sel.IDs() }

func (s *Session) IsSelected(id int) bool { return s.sel.Has(id) }

func (s *Session) IsChanged(id int) bool { return s.swaps.IsChanged(id) }

func (s *Session) Changed() []int { return s.swaps.Changed() }

func (s *Session) Display() unit.DisplayMode { return s.display }

func (s *Session) SetDisplay(m unit.DisplayMode) { s.display = m }

func (s *Session) GridOptions() grid.Options { return s.gridOpt }

func (s *Session) SetGridOptions(o grid.Options) { s.gridOpt = o }

func (s *Session) Preferences() swap.Preferences { return s.swaps.Preferences() }

// SetConfirmer replaces the swap gate. Nil lets every swap through.
func (s *Session) SetConfirmer(c swap.Confirmer) { s.swaps.SetConfirmer(c) }

func (s *Session) SetPreferences(ctx context.Context, p swap.Preferences) error {
	if err := s.swaps.SetPreferences(ctx, p); err != nil {
		return storageErr(err)
	}
	return nil
}

// Grid builds the grid index with the current layout and filter.
func (s *Session) Grid() *grid.Index {
	return grid.New(s.units.Units(), s.gridOpt)
}

// Activate switches mode and records it. Activating None is a Cancel.
func (s *Session) Activate(ctx context.Context, m mode.Mode) error {
	if m == mode.None {
		s.Cancel()
		return nil
	}
	s.modes.Activate(m)
	s.actions.Record(actionlog.KindMode, fmt.Sprintf("Activated %s mode", m))
	return s.persist(ctx)
}

// Cancel clears the selection and the mode.
func (s *Session) Cancel() {
	s.modes.Cancel()
	s.sel.Clear()
}

// EndMode confirms a mode whose effects were applied as they happened, like
// move, copy and select, and returns it. The selection is cleared.
func (s *Session) EndMode() mode.Mode {
	m := s.modes.Confirm()
	s.sel.Clear()
	return m
}

// Click applies a single click and returns the intent it produced.
func (s *Session) Click(ctx context.Context, t mode.Target) (mode.Intent, error) {
	in := s.modes.Click(t)
	return in, s.apply(ctx, in)
}

// DoubleClick returns the unit to show in an edit view. It never mutates.
func (s *Session) DoubleClick(t mode.Target) (*unit.Unit, bool) {
	in := s.modes.DoubleClick(t)
	if in.Kind != mode.Open {
		return nil, false
	}
	return s.units.Get(in.ID)
}

// Dispatch feeds a pointer event to the gesture state machine and applies the
// resulting intent.
func (s *Session) Dispatch(ctx context.Context, ev mode.Event) (mode.Intent, error) {
	in := s.modes.Dispatch(ev)
	return in, s.apply(ctx, in)
}

func (s *Session) apply(ctx context.Context, in mode.Intent) error {
	switch in.Kind {
	case mode.Toggle:
		s.sel.Toggle(in.ID)
	case mode.Lasso:
		s.sel.Add(s.Grid().Region(in.From, in.To)...)
	case mode.Swap:
		_, err := s.Swap(ctx, in.Source, in.ID)
		return err
	case mode.Place:
		_, err := s.Copy(ctx, in.Source, in.To)
		return err
	}
	return nil
}

// SelectFloor adds every unit on floor to the selection.
func (s *Session) SelectFloor(floor int) int { return s.sel.SelectByFloor(floor) }

// SelectSection adds every unit in section to the selection.
func (s *Session) SelectSection(section int) int { return s.sel.SelectBySection(section) }

// SelectStoak adds every unit in one riser of a section to the selection.
func (s *Session) SelectStoak(section, stoak int) int { return s.sel.SelectByStoak(section, stoak) }

// SelectIDs adds the given ids. Unknown ids are ignored.
func (s *Session) SelectIDs(ids ...int) int { return s.sel.Add(ids...) }

// ConfirmDelete removes every selected unit and ends the mode.
func (s *Session) ConfirmDelete(ctx context.Context) (int, error) {
	ids := s.sel.IDs()
	s.modes.Confirm()
	if len(ids) == 0 {
		return 0, nil
	}
	removed := s.units.Remove(ids...)
	s.sel.Purge(removed...)
	s.swaps.Forget(removed...)
	s.actions.Record(actionlog.KindDelete, fmt.Sprintf("Deleted %d units", len(removed)))
	s.log.Info("deleted units", zap.Ints("ids", removed))
	return len(removed), s.persist(ctx)
}

// Patch holds the fields a bulk edit sets. Nil fields stay unchanged.
type Patch struct {
	Status    *unit.Status
	Area      *float64
	Number    *unit.Number
	RoomCount *int
}

func (p Patch) Empty() bool {
	return p.Status == nil && p.Area == nil && p.Number == nil && p.RoomCount == nil
}

func (p Patch) apply(u *unit.Unit) {
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.Area != nil {
		u.Area = *p.Area
	}
	if p.Number != nil {
		u.Number = *p.Number
	}
	if p.RoomCount != nil {
		u.RoomCount = *p.RoomCount
	}
}

// ConfirmEdit applies p to every selected unit, then clears the selection and
// ends the mode.
func (s *Session) ConfirmEdit(ctx context.Context, p Patch) (int, error) {
	ids := s.sel.IDs()
	s.modes.Confirm()
	if len(ids) == 0 || p.Empty() {
		s.sel.Clear()
		return 0, nil
	}
	n := 0
	for _, id := range ids {
		u, ok := s.units.Get(id)
		if !ok {
			continue
		}
		p.apply(u)
		s.swaps.MarkChanged(id)
		n++
	}
	s.sel.Clear()
	s.actions.Record(actionlog.KindEdit, fmt.Sprintf("Confirmed bulk edit of %d items", n))
	return n, s.persist(ctx)
}

// Swap exchanges the numbers of two units.
func (s *Session) Swap(ctx context.Context, a, b int) (swap.Result, error) {
	res, err := s.swaps.Swap(ctx, a, b)
	if err != nil {
		return res, err
	}
	return res, s.persist(ctx)
}

// Copy duplicates src into the empty slot at c. A zero src uses the single
// selected unit.
func (s *Session) Copy(ctx context.Context, src int, c grid.Coord) (*unit.Unit, error) {
	if src == 0 {
		ids := s.sel.IDs()
		if len(ids) != 1 {
			return nil, ErrNoSource
		}
		src = ids[0]
	}
	from, ok := s.units.Get(src)
	if !ok {
		return nil, fmt.Errorf("%w: id %d", unitstore.ErrNotFound, src)
	}
	if err := s.checkFree(c); err != nil {
		return nil, err
	}
	u := s.units.Add(&unit.Unit{
		Floor:     c.Floor,
		Section:   c.Section,
		Stoak:     c.Stoak,
		Number:    unit.ConventionalNumber(c.Floor, c.Section),
		Area:      from.Area,
		RoomCount: from.RoomCount,
		Status:    from.Status,
	})
	s.swaps.MarkChanged(u.ID)
	s.actions.Record(actionlog.KindCopy, fmt.Sprintf("Copied %s to %s as %s", from.Number, c, u.Number))
	return u, s.persist(ctx)
}

// Add stores a new unit at its slot. A zero number gets the conventional one.
func (s *Session) Add(ctx context.Context, u unit.Unit) (*unit.Unit, error) {
	c := grid.Coord{Floor: u.Floor, Section: u.Section, Stoak: u.Stoak}
	if u.Floor < 1 || u.Section < 1 || u.Stoak < 0 {
		return nil, fmt.Errorf("%w: %s", grid.ErrInvalidCoordinate, c)
	}
	if err := s.checkFree(c); err != nil {
		return nil, err
	}
	if u.Number == 0 {
		u.Number = unit.ConventionalNumber(u.Floor, u.Section)
	}
	added := s.units.Add(&u)
	s.swaps.MarkChanged(added.ID)
	s.actions.Record(actionlog.KindAdd, fmt.Sprintf("Added %s at %s", added.Number, c))
	return added, s.persist(ctx)
}

// checkFree looks at the full board, including units a filter hides. A
// coordinate with a stoak is checked against the three-axis slots.
func (s *Session) checkFree(c grid.Coord) error {
	if c.Floor < 1 || c.Section < 1 {
		return fmt.Errorf("%w: %s", grid.ErrInvalidCoordinate, c)
	}
	layout := grid.Flat
	if c.Stoak != 0 {
		layout = grid.Sectioned
	}
	if grid.New(s.units.Units(), grid.Options{Layout: layout}).Occupied(c) {
		return fmt.Errorf("%w: %s", ErrOccupied, c)
	}
	return nil
}

// Recount renumbers every unit from start in iteration order.
func (s *Session) Recount(ctx context.Context, start int) (int, error) {
	n := s.units.Recount(start)
	s.swaps.MarkChanged(s.units.IDs()...)
	s.actions.Record(actionlog.KindRecount, fmt.Sprintf("Recounted %d units from %d", n, start))
	return n, s.persist(ctx)
}

// Seed replaces the board with a generated one.
func (s *Session) Seed(ctx context.Context, sections, floors, stoaks int) (int, error) {
	units := unit.Generate(sections, floors, stoaks)
	if units == nil {
		return 0, ErrInvalidBoard
	}
	s.units.Replace(units)
	s.sel.Clear()
	s.swaps.ResetChanged()
	s.modes.Cancel()
	s.actions.Record(actionlog.KindSeed,
		fmt.Sprintf("Seeded %d sections x %d floors x %d stoaks", sections, floors, stoaks))
	return len(units), s.persist(ctx)
}

// Save commits pending changes and clears the changed marks.
func (s *Session) Save(ctx context.Context) error {
	if n := len(s.swaps.Changed()); n > 0 {
		s.actions.Record(actionlog.KindSave, fmt.Sprintf("Saved %d changed units", n))
	}
	s.swaps.ResetChanged()
	return s.persist(ctx)
}

// Hint summarizes state for a status line.
type Hint struct {
	Mode     mode.Mode
	Selected int
	Changed  int
}

func (h Hint) String() string {
	out := fmt.Sprintf("%d selected", h.Selected)
	if h.Mode != mode.None {
		out = fmt.Sprintf("[%s] %s", h.Mode, out)
	}
	if h.Changed > 0 {
		out += fmt.Sprintf(", %d unsaved", h.Changed)
	}
	return out
}

func (s *Session) Hint() Hint {
	return Hint{Mode: s.modes.Mode(), Selected: s.sel.Len(), Changed: len(s.swaps.Changed())}
}

// Logs lists action log entries newest first. An empty kind lists all.
func (s *Session) Logs(kind string) []actionlog.Entry {
	return s.actions.List(kind)
}

func (s *Session) ClearLogs(ctx context.Context) error {
	s.actions.Clear()
	if err := s.actions.Save(ctx); err != nil {
		return storageErr(err)
	}
	return nil
}
