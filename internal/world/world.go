// Package world holds the dungeon container: the entity collection, the player
// references and the goal tree, plus the queries goal evaluation relies on.
package world

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/udisondev/dungeon/internal/game/quest"
	"github.com/udisondev/dungeon/internal/model"
)

var (
	// ErrInvariant marks container misuse (nil entity, duplicate identity, second player).
	// It is a programming error, never a content error.
	ErrInvariant = errors.New("world invariant violated")
	// ErrNotFound is returned when an entity ID is not registered.
	ErrNotFound = errors.New("entity not found")
)

// Dungeon is the world container for one loaded level.
// Entities are owned by the dungeon; other components look them up by ID.
// Safe for concurrent use; goal evaluation only takes read locks.
// Queries answer from the positions recorded by AddEntity and MoveEntity.
type Dungeon struct {
	mu sync.RWMutex

	instanceID    uuid.UUID
	width, height int
	ids           *ObjectIDGenerator

	entities []model.Entity            // load order
	byID     map[uint32]model.Entity   // objectID → entity
	posOf    map[uint32]model.Position // objectID → indexed position
	cells    *cellIndex                // position → stacked entities
	kinds    map[model.Kind]int        // live count per variant
	treasure int                       // uncollected treasure pickups

	player *model.Player
	coop   *model.Player
	goal   quest.Mission
}

var _ quest.State = (*Dungeon)(nil)

// NewDungeon creates an empty dungeon with advisory bounds width×height.
func NewDungeon(width, height int) *Dungeon {
	return &Dungeon{
		instanceID: uuid.New(),
		width:      width,
		height:     height,
		ids:        NewObjectIDGenerator(),
		entities:   make([]model.Entity, 0, 64),
		byID:       make(map[uint32]model.Entity, 64),
		posOf:      make(map[uint32]model.Position, 64),
		cells:      newCellIndex(),
		kinds:      make(map[model.Kind]int, len(model.Kinds())),
	}
}

// InstanceID identifies this loaded copy of a level in logs.
func (d *Dungeon) InstanceID() uuid.UUID { return d.instanceID }

// Width returns the advisory width.
func (d *Dungeon) Width() int { return d.width }

// Height returns the advisory height.
func (d *Dungeon) Height() int { return d.height }

// InBounds reports whether pos lies inside width×height.
func (d *Dungeon) InBounds(pos model.Position) bool {
	return pos.X >= 0 && pos.X < d.width && pos.Y >= 0 && pos.Y < d.height
}

// NextID returns a fresh entity identity for this dungeon.
func (d *Dungeon) NextID() uint32 {
	return d.ids.Next()
}

// AddEntity registers e in the general collection.
// Players should go through SetPlayer/SetCoopPlayer so the references are kept.
func (d *Dungeon) AddEntity(e model.Entity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addLocked(e)
}

func (d *Dungeon) addLocked(e model.Entity) error {
	if e == nil {
		return fmt.Errorf("adding nil entity: %w", ErrInvariant)
	}
	if _, exists := d.byID[e.ID()]; exists {
		return fmt.Errorf("entity %d already registered: %w", e.ID(), ErrInvariant)
	}

	d.entities = append(d.entities, e)
	pos := e.Position()
	d.byID[e.ID()] = e
	d.posOf[e.ID()] = pos
	d.cells.add(e, pos)
	d.kinds[e.Kind()]++
	if p, ok := e.(*model.PickUp); ok && p.IsTreasure() {
		d.treasure++
	}
	return nil
}

// SetPlayer registers p as the primary player.
func (d *Dungeon) SetPlayer(p *model.Player) error {
	return d.setPlayer(p, &d.player, "primary")
}

// SetCoopPlayer registers p as the co-op player.
func (d *Dungeon) SetCoopPlayer(p *model.Player) error {
	return d.setPlayer(p, &d.coop, "co-op")
}

func (d *Dungeon) setPlayer(p *model.Player, slot **model.Player, role string) error {
	if p == nil {
		return fmt.Errorf("setting nil %s player: %w", role, ErrInvariant)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if *slot != nil {
		return fmt.Errorf("%s player already set (entity %d): %w", role, (*slot).ID(), ErrInvariant)
	}
	if err := d.addLocked(p); err != nil {
		return err
	}
	*slot = p
	return nil
}

// RemoveEntity removes the entity with the given ID, e.g. a collected pickup or a dead enemy.
// Removing a player clears the matching reference.
func (d *Dungeon) RemoveEntity(id uint32) (model.Entity, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("removing entity %d: %w", id, ErrNotFound)
	}

	d.cells.remove(e, d.posOf[id])
	delete(d.byID, id)
	delete(d.posOf, id)
	d.entities = slices.DeleteFunc(d.entities, func(other model.Entity) bool {
		return other.ID() == id
	})
	d.kinds[e.Kind()]--
	if p, ok := e.(*model.PickUp); ok && p.IsTreasure() {
		d.treasure--
	}

	if d.player != nil && d.player.ID() == id {
		d.player = nil
	}
	if d.coop != nil && d.coop.ID() == id {
		d.coop = nil
	}
	return e, nil
}

// MoveEntity places the entity with the given ID at pos.
// Bounds are not enforced here; collision rules belong to gameplay code.
func (d *Dungeon) MoveEntity(id uint32, pos model.Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.byID[id]
	if !ok {
		return fmt.Errorf("moving entity %d: %w", id, ErrNotFound)
	}

	old := d.posOf[id]
	if old == pos {
		return nil
	}
	if _, ok := model.Relocate(e, pos); !ok {
		return fmt.Errorf("entity %d (%s) is not movable: %w", id, e.Kind(), ErrInvariant)
	}
	d.cells.remove(e, old)
	d.cells.add(e, pos)
	d.posOf[id] = pos
	return nil
}

// PositionOf returns the position the dungeon has indexed for the entity.
func (d *Dungeon) PositionOf(id uint32) (model.Position, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	pos, ok := d.posOf[id]
	return pos, ok
}

// SetGoal stores the goal tree built by the loader.
func (d *Dungeon) SetGoal(m quest.Mission) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.goal = m
}

// Goal returns the stored goal tree (nil before loading).
func (d *Dungeon) Goal() quest.Mission {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.goal
}

// IsComplete evaluates the stored goal against the current state.
// A dungeon without a goal is never complete.
func (d *Dungeon) IsComplete() bool {
	goal := d.Goal()
	if goal == nil {
		return false
	}
	return goal.IsComplete(d)
}

// Entity returns the entity with the given ID.
func (d *Dungeon) Entity(id uint32) (model.Entity, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.byID[id]
	return e, ok
}

// Entities returns a copy of the entity collection in load order.
func (d *Dungeon) Entities() []model.Entity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.entities)
}

// EntitiesAt returns a copy of the entities stacked at pos.
func (d *Dungeon) EntitiesAt(pos model.Position) []model.Entity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.cells.at(pos))
}

// Count returns the number of registered entities, players included.
func (d *Dungeon) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entities)
}

// CountKind returns the number of live entities of the given variant.
func (d *Dungeon) CountKind(kind model.Kind) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.kinds[kind]
}

// Player returns the primary player, nil if absent.
func (d *Dungeon) Player() *model.Player {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.player
}

// CoopPlayer returns the co-op player, nil in single-player levels.
func (d *Dungeon) CoopPlayer() *model.Player {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.coop
}

// Players returns the registered players, primary first.
func (d *Dungeon) Players() []*model.Player {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.playersLocked()
}

func (d *Dungeon) playersLocked() []*model.Player {
	players := make([]*model.Player, 0, 2)
	if d.player != nil {
		players = append(players, d.player)
	}
	if d.coop != nil {
		players = append(players, d.coop)
	}
	return players
}
