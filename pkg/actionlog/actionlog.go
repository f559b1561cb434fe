// Package actionlog keeps a bounded history of what the user did to the board.
package actionlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/chessboard/pkg/logging"
	"tableflip.dev/chessboard/pkg/store"
)

// Limit is the most entries the log holds. Older entries are evicted first.
const Limit = 100

// Kinds recorded by the session.
const (
	KindMode    = "mode"
	KindMove    = "move"
	KindDelete  = "delete"
	KindEdit    = "edit"
	KindCopy    = "copy"
	KindAdd     = "add"
	KindRecount = "recount"
	KindSeed    = "seed"
	KindSave    = "save"
)

type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
}

// Log is oldest-first internally.
type Log struct {
	p       store.Persistence
	log     *zap.Logger
	entries []Entry
	now     func() time.Time
}

func New(p store.Persistence, log *zap.Logger) *Log {
	return &Log{p: p, log: logging.OrNop(log), now: time.Now}
}

// Record appends an entry and evicts the oldest past Limit.
func (l *Log) Record(kind, message string) Entry {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	e := Entry{
		ID:        id.String(),
		Timestamp: l.now().UTC().Round(0),
		Kind:      kind,
		Message:   message,
	}
	l.entries = append(l.entries, e)
	if over := len(l.entries) - Limit; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
	l.log.Debug("action", zap.String("kind", kind), zap.String("message", message))
	return e
}

// List returns entries newest first. An empty kind matches everything.
func (l *Log) List(kind string) []Entry {
	out := make([]Entry, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		if kind == "" || l.entries[i].Kind == kind {
			out = append(out, l.entries[i])
		}
	}
	return out
}

func (l *Log) Len() int { return len(l.entries) }

func (l *Log) Clear() {
	l.entries = nil
}

// Load replaces the in-memory log with the stored one. A missing key is an
// empty log.
func (l *Log) Load(ctx context.Context) error {
	if l.p == nil {
		l.entries = nil
		return nil
	}
	raw, err := l.p.Load(ctx, store.KeyActions)
	if errors.Is(err, store.ErrNotFound) {
		l.entries = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("actionlog: load: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		l.log.Warn("discarding unreadable action log", zap.Error(err))
		return fmt.Errorf("actionlog: decode: %w", err)
	}
	if over := len(entries) - Limit; over > 0 {
		entries = entries[over:]
	}
	l.entries = entries
	return nil
}

func (l *Log) Save(ctx context.Context) error {
	if l.p == nil {
		return nil
	}
	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := l.p.Save(ctx, store.KeyActions, data); err != nil {
		return fmt.Errorf("actionlog: save: %w", err)
	}
	return nil
}
