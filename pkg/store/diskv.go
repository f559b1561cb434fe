package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

type diskvPersistence struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv stores each key as one file under basePath.
func NewDiskv(basePath string) (Persistence, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	tempDir := TempDir(basePath)
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure temp dir: %w", err)
	}
	return &diskvPersistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// Writes land in TempDir and are renamed into place, so readers
		// never see a half-written value.
		TempDir:           tempDir,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// TempDir is the staging directory for atomic writes. It sits next to
// basePath, on the same filesystem and outside the watched directory.
func TempDir(basePath string) string {
	return filepath.Clean(basePath) + ".tmp"
}

func (p *diskvPersistence) Load(_ context.Context, key string) ([]byte, error) {
	if !p.d.Has(key) {
		return nil, ErrNotFound
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *diskvPersistence) Save(_ context.Context, key string, value []byte) error {
	if err := p.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *diskvPersistence) Delete(_ context.Context, key string) error {
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *diskvPersistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (p *diskvPersistence) Watch(ctx context.Context) (<-chan Event, error) {
	return watchPath(ctx, p.basePath, p.keyForPath)
}

func (p *diskvPersistence) keyForPath(path string) string {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return ""
	}
	return name
}

// Keys are stored flat, one file per key.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
