// Package unitstore owns the unit records of a chessboard and keeps them in
// sync with a key/value Persistence.
package unitstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/chessboard/pkg/logging"
	"tableflip.dev/chessboard/pkg/store"
	"tableflip.dev/chessboard/pkg/unit"
)

var (
	// ErrNotFound is returned for ids that do not resolve to a unit.
	ErrNotFound = errors.New("unitstore: unit not found")
	// ErrStorageUnavailable wraps persistence failures. The in-memory state
	// stays usable for the rest of the session.
	ErrStorageUnavailable = errors.New("unitstore: storage unavailable")
)

// Store is the authoritative list of units. Iteration order is insertion order.
type Store struct {
	p     store.Persistence
	log   *zap.Logger
	units []*unit.Unit
}

func New(p store.Persistence, log *zap.Logger) *Store {
	return &Store{p: p, log: logging.OrNop(log)}
}

// Load reads the stored units. Missing data falls back to the seed board;
// unreadable data falls back to the seed board and reports
// ErrStorageUnavailable.
func (s *Store) Load(ctx context.Context) error {
	if s.p == nil {
		s.units = unit.Seed()
		return fmt.Errorf("%w: no persistence configured", ErrStorageUnavailable)
	}
	raw, err := s.p.Load(ctx, store.KeyUnits)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Debug("no stored units, using seed")
		s.units = unit.Seed()
		return nil
	}
	if err != nil {
		s.log.Warn("loading units failed, using seed", zap.Error(err))
		s.units = unit.Seed()
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	var units []*unit.Unit
	if err := json.Unmarshal(raw, &units); err != nil {
		s.log.Warn("decoding units failed, using seed", zap.Error(err))
		s.units = unit.Seed()
		return fmt.Errorf("%w: decode units: %v", ErrStorageUnavailable, err)
	}
	s.units = compact(units)
	s.log.Debug("loaded units", zap.Int("count", len(s.units)))
	return nil
}

// Reload re-reads the stored units after an outside change. Unlike Load it
// never falls back to the seed board: a missing, unreadable or half-written
// value keeps the units in memory.
func (s *Store) Reload(ctx context.Context) error {
	if s.p == nil {
		return fmt.Errorf("%w: no persistence configured", ErrStorageUnavailable)
	}
	raw, err := s.p.Load(ctx, store.KeyUnits)
	if errors.Is(err, store.ErrNotFound) {
		s.log.Debug("stored units gone, keeping the board in memory")
		return nil
	}
	if err != nil {
		s.log.Warn("reloading units failed, keeping the board in memory", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	var units []*unit.Unit
	if err := json.Unmarshal(raw, &units); err != nil {
		s.log.Warn("decoding reloaded units failed, keeping the board in memory", zap.Error(err))
		return fmt.Errorf("%w: decode units: %v", ErrStorageUnavailable, err)
	}
	s.units = compact(units)
	s.log.Debug("reloaded units", zap.Int("count", len(s.units)))
	return nil
}

// Save writes every unit.
func (s *Store) Save(ctx context.Context) error {
	if s.p == nil {
		return fmt.Errorf("%w: no persistence configured", ErrStorageUnavailable)
	}
	data, err := json.Marshal(s.units)
	if err != nil {
		return err
	}
	if err := s.p.Save(ctx, store.KeyUnits, data); err != nil {
		s.log.Warn("saving units failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return nil
}

// Units returns the live records in iteration order. Callers must not append
// to the slice.
func (s *Store) Units() []*unit.Unit {
	return s.units
}

func (s *Store) Len() int { return len(s.units) }

func (s *Store) Get(id int) (*unit.Unit, bool) {
	for _, u := range s.units {
		if u.ID == id {
			return u, true
		}
	}
	return nil, false
}

func (s *Store) IDs() []int {
	ids := make([]int, len(s.units))
	for i, u := range s.units {
		ids[i] = u.ID
	}
	return ids
}

// Add stores u under a fresh id and returns it.
func (s *Store) Add(u *unit.Unit) *unit.Unit {
	u.ID = s.nextID()
	s.units = append(s.units, u)
	return u
}

// Remove deletes the given ids and returns the ones that existed.
func (s *Store) Remove(ids ...int) []int {
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	removed := make([]int, 0, len(ids))
	kept := s.units[:0]
	for _, u := range s.units {
		if drop[u.ID] {
			removed = append(removed, u.ID)
			continue
		}
		kept = append(kept, u)
	}
	for i := len(kept); i < len(s.units); i++ {
		s.units[i] = nil
	}
	s.units = kept
	return removed
}

// Replace swaps in a whole new board.
func (s *Store) Replace(units []*unit.Unit) {
	s.units = compact(units)
}

// Recount renumbers every unit in iteration order starting at start.
func (s *Store) Recount(start int) int {
	for i, u := range s.units {
		u.Number = unit.Number(start + i)
	}
	return len(s.units)
}

func (s *Store) nextID() int {
	max := 0
	for _, u := range s.units {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// compact drops nil records and later duplicates of an id.
func compact(units []*unit.Unit) []*unit.Unit {
	seen := make(map[int]bool, len(units))
	out := make([]*unit.Unit, 0, len(units))
	for _, u := range units {
		if u == nil || seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		out = append(out, u)
	}
	return out
}
