// Package store provides the key/value persistence the chessboard is saved to.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Logical keys.
const (
	KeyUnits       = "units"
	KeyActions     = "actions"
	KeyPreferences = "preferences"
)

// ErrNotFound is returned by Load when nothing is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Persistence is a small key/value contract. Values are opaque JSON blobs.
type Persistence interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Driver names a Persistence backend.
type Driver string

const (
	DriverDiskv  Driver = "diskv"
	DriverSQLite Driver = "sqlite"
	DriverMemory Driver = "memory"
)

func ParseDriver(s string) (Driver, error) {
	switch Driver(strings.ToLower(strings.TrimSpace(s))) {
	case "", DriverDiskv:
		return DriverDiskv, nil
	case DriverSQLite, "sqlite3":
		return DriverSQLite, nil
	case DriverMemory, "mem":
		return DriverMemory, nil
	}
	return "", fmt.Errorf("store: unknown driver %q", s)
}

// Load creates the Persistence described by cfg. A nil cfg is read with
// LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	switch cfg.Driver() {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(cfg.BasePath())
	default:
		return NewDiskv(cfg.BasePath())
	}
}
