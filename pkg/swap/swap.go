// Package swap exchanges the numbers of two units behind an optional
// confirmation gate.
package swap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"tableflip.dev/chessboard/pkg/actionlog"
	"tableflip.dev/chessboard/pkg/logging"
	"tableflip.dev/chessboard/pkg/store"
	"tableflip.dev/chessboard/pkg/unit"
)

var (
	ErrNotFound = errors.New("swap: unit not found")
	ErrSameUnit = errors.New("swap: source and target are the same unit")
	ErrDeclined = errors.New("swap: declined")
)

// Units resolves ids to live records.
type Units interface {
	Get(id int) (*unit.Unit, bool)
}

// Recorder receives one entry per committed swap.
type Recorder interface {
	Record(kind, message string) actionlog.Entry
}

// Decision is a Confirmer's answer.
type Decision struct {
	OK           bool
	DontAskAgain bool
}

// Confirmer is asked before every swap until it answers DontAskAgain.
type Confirmer interface {
	ConfirmSwap(ctx context.Context, src, tgt *unit.Unit) (Decision, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, src, tgt *unit.Unit) (Decision, error)

func (f ConfirmFunc) ConfirmSwap(ctx context.Context, src, tgt *unit.Unit) (Decision, error) {
	return f(ctx, src, tgt)
}

// Preferences are stored under store.KeyPreferences.
type Preferences struct {
	SkipSwapConfirm bool `json:"skipSwapConfirm"`
}

type Result struct {
	Source *unit.Unit
	Target *unit.Unit
	Entry  actionlog.Entry
}

// Engine applies the number swap policy: only Number moves, both records stay
// where they are.
type Engine struct {
	units   Units
	rec     Recorder
	confirm Confirmer
	p       store.Persistence
	log     *zap.Logger

	prefs   Preferences
	changed map[int]bool
}

func New(units Units, rec Recorder, p store.Persistence, log *zap.Logger) *Engine {
	return &Engine{
		units:   units,
		rec:     rec,
		p:       p,
		log:     logging.OrNop(log),
		changed: map[int]bool{},
	}
}

// SetConfirmer installs the gate. A nil Confirmer lets every swap through.
func (e *Engine) SetConfirmer(c Confirmer) {
	e.confirm = c
}

func (e *Engine) Preferences() Preferences { return e.prefs }

// LoadPreferences reads the stored preferences. Missing preferences are the
// zero value.
func (e *Engine) LoadPreferences(ctx context.Context) error {
	if e.p == nil {
		e.prefs = Preferences{}
		return nil
	}
	raw, err := e.p.Load(ctx, store.KeyPreferences)
	if errors.Is(err, store.ErrNotFound) {
		e.prefs = Preferences{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("swap: load preferences: %w", err)
	}
	var prefs Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return fmt.Errorf("swap: decode preferences: %w", err)
	}
	e.prefs = prefs
	return nil
}

// SetPreferences replaces and persists the preferences.
func (e *Engine) SetPreferences(ctx context.Context, prefs Preferences) error {
	e.prefs = prefs
	if e.p == nil {
		return nil
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	if err := e.p.Save(ctx, store.KeyPreferences, data); err != nil {
		return fmt.Errorf("swap: save preferences: %w", err)
	}
	return nil
}

// Swap exchanges the numbers of src and tgt. Every error leaves both units
// untouched.
func (e *Engine) Swap(ctx context.Context, src, tgt int) (Result, error) {
	if src == tgt {
		return Result{}, ErrSameUnit
	}
	a, ok := e.units.Get(src)
	if !ok {
		return Result{}, fmt.Errorf("%w: id %d", ErrNotFound, src)
	}
	b, ok := e.units.Get(tgt)
	if !ok {
		return Result{}, fmt.Errorf("%w: id %d", ErrNotFound, tgt)
	}

	if e.confirm != nil && !e.prefs.SkipSwapConfirm {
		d, err := e.confirm.ConfirmSwap(ctx, a, b)
		if err != nil {
			return Result{}, err
		}
		if !d.OK {
			return Result{}, ErrDeclined
		}
		if d.DontAskAgain {
			prefs := e.prefs
			prefs.SkipSwapConfirm = true
			if err := e.SetPreferences(ctx, prefs); err != nil {
				// The swap still goes ahead; only the preference is lost.
				e.log.Warn("saving preferences failed", zap.Error(err))
			}
		}
	}

	msg := fmt.Sprintf("Swapped %s and %s", a.Number, b.Number)
	a.Number, b.Number = b.Number, a.Number
	e.changed[a.ID] = true
	e.changed[b.ID] = true

	var entry actionlog.Entry
	if e.rec != nil {
		entry = e.rec.Record(actionlog.KindMove, msg)
	}
	e.log.Info("swapped units", zap.Int("source", a.ID), zap.Int("target", b.ID))
	return Result{Source: a, Target: b, Entry: entry}, nil
}

// Changed returns the ids swapped since the last ResetChanged, ascending.
func (e *Engine) Changed() []int {
	ids := make([]int, 0, len(e.changed))
	for id := range e.changed {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (e *Engine) IsChanged(id int) bool { return e.changed[id] }

// MarkChanged flags ids touched by other commits so a single save step covers
// them.
func (e *Engine) MarkChanged(ids ...int) {
	for _, id := range ids {
		e.changed[id] = true
	}
}

// Forget drops ids that no longer exist.
func (e *Engine) Forget(ids ...int) {
	for _, id := range ids {
		delete(e.changed, id)
	}
}

func (e *Engine) ResetChanged() {
	e.changed = map[int]bool{}
}
