package level

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/dungeon/internal/game/quest"
	"github.com/udisondev/dungeon/internal/world"
)

// Level is a successfully loaded level.
type Level struct {
	Name    string
	Dungeon *world.Dungeon
	Goal    quest.Mission
}

// Complete reports whether the level's goal is currently satisfied.
func (l *Level) Complete() bool {
	return l.Goal.IsComplete(l.Dungeon)
}

// Service loads named levels from a Source.
type Service struct {
	source Source
	loader *Loader
	logger *slog.Logger
}

// NewService creates a Service.
func NewService(source Source, loader *Loader, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, loader: loader, logger: logger}
}

// Load reads and loads the level called name.
func (s *Service) Load(ctx context.Context, name string) (*Level, error) {
	data, err := s.source.Read(ctx, name)
	if err != nil {
		s.logger.Warn("reading level failed", "level", name, "error", err)
		return nil, fmt.Errorf("loading level %s: %w", name, err)
	}

	d, goal, err := s.loader.LoadBytes(name, data)
	if err != nil {
		s.logger.Warn("level rejected", "level", name, "error", err)
		return nil, fmt.Errorf("loading level %s: %w", name, err)
	}
	return &Level{Name: name, Dungeon: d, Goal: goal}, nil
}

// Reload loads name again, building a fresh dungeon. The previous Level is left untouched.
func (s *Service) Reload(ctx context.Context, name string) (*Level, error) {
	s.logger.Info("reloading level", "level", name)
	return s.Load(ctx, name)
}

// LoadAll loads every level the source can list. Stops at the first failure.
func (s *Service) LoadAll(ctx context.Context) ([]*Level, error) {
	lister, ok := s.source.(Lister)
	if !ok {
		return nil, fmt.Errorf("source %T cannot list levels", s.source)
	}
	names, err := lister.List(ctx)
	if err != nil {
		return nil, err
	}
	levels := make([]*Level, 0, len(names))
	for _, name := range names {
		lvl, err := s.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
