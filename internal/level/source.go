package level

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// ErrLevelNotFound is returned by sources for unknown level names.
var ErrLevelNotFound = errors.New("level not found")

// Source provides raw level descriptions by name.
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// Lister is implemented by sources that can enumerate their levels.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// IsLevelFile reports whether name has a level description extension.
func IsLevelFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// DirSource reads levels from a directory on disk.
type DirSource struct {
	dir string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Dir returns the root directory.
func (s *DirSource) Dir() string { return s.dir }

// Read returns the contents of <dir>/<name>. Names may not escape dir.
func (s *DirSource) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.FromSlash(clean)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading level %s: %w", name, ErrLevelNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", name, err)
	}
	return data, nil
}

// List returns level file names in dir, sorted. A missing dir lists nothing.
func (s *DirSource) List(ctx context.Context) ([]string, error) {
	if _, err := os.Stat(s.dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return listLevels(ctx, os.DirFS(s.dir))
}

// FSSource reads levels from an fs.FS, typically an embedded one.
type FSSource struct {
	fsys fs.FS
}

// NewFSSource creates a source over fsys.
func NewFSSource(fsys fs.FS) *FSSource {
	return &FSSource{fsys: fsys}
}

func (s *FSSource) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean, err := cleanName(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, clean)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading level %s: %w", name, ErrLevelNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading level %s: %w", name, err)
	}
	return data, nil
}

func (s *FSSource) List(ctx context.Context) ([]string, error) {
	return listLevels(ctx, s.fsys)
}

func listLevels(ctx context.Context, fsys fs.FS) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("listing levels: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && IsLevelFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)
	return names, nil
}

func cleanName(name string) (string, error) {
	clean := path.Clean(filepath.ToSlash(name))
	if !fs.ValidPath(clean) || clean == "." {
		return "", fmt.Errorf("invalid level name %q: %w", name, ErrLevelNotFound)
	}
	return clean, nil
}

// ChainSource tries each source in order, moving on only when a level is not found.
type ChainSource []Source

func (c ChainSource) Read(ctx context.Context, name string) ([]byte, error) {
	for _, src := range c {
		data, err := src.Read(ctx, name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, ErrLevelNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("reading level %s: %w", name, ErrLevelNotFound)
}

// List merges the names of every listable source, sorted and deduplicated.
func (c ChainSource) List(ctx context.Context) ([]string, error) {
	var names []string
	for _, src := range c {
		lister, ok := src.(Lister)
		if !ok {
			continue
		}
		n, err := lister.List(ctx)
		if err != nil {
			return nil, err
		}
		names = append(names, n...)
	}
	slices.Sort(names)
	return slices.Compact(names), nil
}
