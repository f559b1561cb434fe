package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	path   string
	driver Driver
}

func (t testConfig) BasePath() string  { return t.path }
func (t testConfig) Driver() Driver    { return t.driver }
func (t testConfig) LogLevel() string  { return "error" }
func (t testConfig) LogFormat() string { return "console" }
func (t testConfig) Display() string   { return "number" }
func (t testConfig) Layout() string    { return "flat" }
func (t testConfig) Confirm() bool     { return false }

func backends(t *testing.T) map[string]Persistence {
	t.Helper()
	out := map[string]Persistence{"memory": NewMemory()}

	d, err := Load(testConfig{path: t.TempDir(), driver: DriverDiskv})
	if err != nil {
		t.Fatalf("load diskv: %v", err)
	}
	out["diskv"] = d

	s, err := NewSQLite(filepath.Join(t.TempDir(), "board.sqlite"))
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	out["sqlite"] = s
	return out
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, p := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := p.Load(ctx, KeyUnits); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
			if err := p.Save(ctx, KeyUnits, []byte(`[{"id":1}]`)); err != nil {
				t.Fatalf("save: %v", err)
			}
			if err := p.Save(ctx, KeyUnits, []byte(`[{"id":2}]`)); err != nil {
				t.Fatalf("overwrite: %v", err)
			}
			got, err := p.Load(ctx, KeyUnits)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if string(got) != `[{"id":2}]` {
				t.Fatalf("unexpected payload %q", got)
			}
			if err := p.Save(ctx, KeyActions, []byte(`[]`)); err != nil {
				t.Fatalf("save actions: %v", err)
			}
			keys := p.Keys(ctx)
			if len(keys) != 2 || keys[0] != KeyActions || keys[1] != KeyUnits {
				t.Fatalf("unexpected keys %v", keys)
			}
			if err := p.Delete(ctx, KeyUnits); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := p.Load(ctx, KeyUnits); !errors.Is(err, ErrNotFound) {
				t.Fatalf("expected ErrNotFound after delete, got %v", err)
			}
			if err := p.Delete(ctx, KeyUnits); err != nil {
				t.Fatalf("deleting a missing key: %v", err)
			}
		})
	}
}

func TestSQLiteReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewSQLite(dir)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := s.Save(context.Background(), KeyPreferences, []byte(`{"skipConfirm":true}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = s.Close()

	again, err := NewSQLite(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	if again.Path() != filepath.Join(dir, sqliteFileName) {
		t.Fatalf("unexpected path %s", again.Path())
	}
	got, err := again.Load(context.Background(), KeyPreferences)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `{"skipConfirm":true}` {
		t.Fatalf("unexpected payload %q", got)
	}
}

func TestParseDriver(t *testing.T) {
	for in, want := range map[string]Driver{"": DriverDiskv, "SQLite": DriverSQLite, "mem": DriverMemory} {
		got, err := ParseDriver(in)
		if err != nil || got != want {
			t.Fatalf("ParseDriver(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDriver("redis"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestDiskvWritesThroughTempDir(t *testing.T) {
	ctx := context.Background()
	base := filepath.Join(t.TempDir(), "board")
	p, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("new diskv: %v", err)
	}
	if err := p.Save(ctx, KeyUnits, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	staged, err := os.ReadDir(TempDir(base))
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	if len(staged) != 0 {
		t.Fatalf("staging files left behind: %v", staged)
	}
	raw, err := os.ReadFile(filepath.Join(base, KeyUnits))
	if err != nil || string(raw) != `[{"id":1}]` {
		t.Fatalf("unexpected file %q, %v", raw, err)
	}
	if keys := p.Keys(ctx); len(keys) != 1 || keys[0] != KeyUnits {
		t.Fatalf("unexpected keys %v", keys)
	}
}
