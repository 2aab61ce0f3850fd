// Package level turns level descriptions into populated dungeons and goal trees
// and hands every created entity to a presentation layer through Hooks.
package level

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/udisondev/dungeon/internal/game/quest"
	"github.com/udisondev/dungeon/internal/metrics"
	"github.com/udisondev/dungeon/internal/model"
	"github.com/udisondev/dungeon/internal/world"
)

// Loader builds dungeons from descriptions. A Loader is immutable after
// construction and may be shared; each Load call owns its dungeon exclusively.
type Loader struct {
	hooks        Hooks
	strictBounds bool
	metrics      *metrics.Collectors
	logger       *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHooks sets the creation callbacks. Defaults to NopHooks.
func WithHooks(h Hooks) Option {
	return func(l *Loader) {
		if h != nil {
			l.hooks = h
		}
	}
}

// WithStrictBounds rejects entities placed outside width×height.
func WithStrictBounds(strict bool) Option {
	return func(l *Loader) { l.strictBounds = strict }
}

// WithMetrics records load counters on c.
func WithMetrics(c *metrics.Collectors) Option {
	return func(l *Loader) { l.metrics = c }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		hooks:  NopHooks{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadBytes parses data (format picked from name) and loads it.
func (l *Loader) LoadBytes(name string, data []byte) (*world.Dungeon, quest.Mission, error) {
	desc, err := Parse(name, data)
	if err != nil {
		l.metrics.LoadFailed(failureCode(err))
		return nil, nil, err
	}
	d, goal, err := l.loadRecorded(name, desc)
	return d, goal, withLevel(err, name)
}

// Load builds a dungeon and its goal from desc.
// The whole description is checked before any entity is created, so on error
// no hook has fired and no dungeon is returned.
func (l *Loader) Load(desc *Description) (*world.Dungeon, quest.Mission, error) {
	return l.loadRecorded("", desc)
}

func (l *Loader) loadRecorded(name string, desc *Description) (*world.Dungeon, quest.Mission, error) {
	start := time.Now()

	d, goal, err := l.load(desc)
	if err != nil {
		l.metrics.LoadFailed(failureCode(err))
		return nil, nil, err
	}

	l.metrics.LevelLoaded(time.Since(start))
	l.logger.Info("level loaded",
		"level", name,
		"instance", d.InstanceID(),
		"width", d.Width(),
		"height", d.Height(),
		"entities", d.Count(),
		"goal", goal.Description(),
		"duration", time.Since(start))
	return d, goal, nil
}

func (l *Loader) load(desc *Description) (*world.Dungeon, quest.Mission, error) {
	if desc == nil {
		return nil, nil, malformed("", CodeMissingField, "empty description")
	}
	if err := desc.Validate(); err != nil {
		return nil, nil, err
	}
	if l.strictBounds {
		if err := checkBounds(desc); err != nil {
			return nil, nil, err
		}
	}

	d := world.NewDungeon(*desc.Width, *desc.Height)

	// Reaching the exit is always required on top of the declared goal.
	declared, err := buildGoal(desc.GoalCondition)
	if err != nil {
		return nil, nil, err
	}
	goal := quest.NewAndQuest(quest.NewExitQuest(), declared)
	d.SetGoal(goal)

	for i, spec := range desc.Entities {
		e, err := l.place(d, spec)
		if err != nil {
			return nil, nil, fmt.Errorf("entities[%d]: %w", i, err)
		}
		if err := Dispatch(l.hooks, e); err != nil {
			return nil, nil, fmt.Errorf("entities[%d]: %w", i, err)
		}
		l.metrics.EntityCreated(e.Kind().String())
		l.logger.Debug("entity created",
			"type", spec.Type,
			"variant", e.Kind(),
			"objectID", e.ID(),
			"position", e.Position())
	}
	return d, goal, nil
}

func (l *Loader) place(d *world.Dungeon, spec EntitySpec) (model.Entity, error) {
	et, err := lookupType(spec.Type)
	if err != nil {
		return nil, err
	}
	id := 0
	if spec.ID != nil {
		id = *spec.ID
	}
	e := et.build(d.NextID(), model.NewPosition(*spec.X, *spec.Y), id)
	if err := et.place(d, e); err != nil {
		return nil, fmt.Errorf("registering %s: %w", spec.Type, err)
	}
	return e, nil
}

// buildGoal turns a validated goal condition into a mission tree.
func buildGoal(g *GoalCondition) (quest.Mission, error) {
	switch g.Goal {
	case quest.CombinatorAnd, quest.CombinatorOr:
		children := make([]quest.Mission, 0, len(g.Subgoals))
		for i := range g.Subgoals {
			child, err := buildGoal(&g.Subgoals[i])
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if g.Goal == quest.CombinatorAnd {
			return quest.NewAndQuest(children...), nil
		}
		return quest.NewOrQuest(children...), nil
	default:
		m, ok := quest.Atomic(g.Goal)
		if !ok {
			return nil, malformed("goal-condition.goal", CodeUnknownGoal, "unknown goal %q", g.Goal)
		}
		return m, nil
	}
}

func checkBounds(desc *Description) error {
	for i, spec := range desc.Entities {
		x, y := *spec.X, *spec.Y
		if x < 0 || y < 0 || x >= *desc.Width || y >= *desc.Height {
			return malformed(fmt.Sprintf("entities[%d]", i), CodeOutOfBounds,
				"%s at (%d, %d) outside %dx%d", spec.Type, x, y, *desc.Width, *desc.Height)
		}
	}
	return nil
}
