package model

import "sync"

// Entity: базовый контракт для всех объектов подземелья.
// Все объекты имеют уникальный ID, вариант (Kind) и позицию.
type Entity interface {
	ID() uint32
	Kind() Kind
	Position() Position
}

// BaseEntity holds the identity and position shared by all variants.
// Embedded by value in every concrete entity.
type BaseEntity struct {
	id       uint32
	kind     Kind
	position Position

	mu sync.RWMutex
}

func newBase(id uint32, kind Kind, pos Position) BaseEntity {
	return BaseEntity{id: id, kind: kind, position: pos}
}

// ID возвращает уникальный ID сущности (immutable после создания).
func (b *BaseEntity) ID() uint32 {
	return b.id
}

// Kind returns the concrete variant tag.
func (b *BaseEntity) Kind() Kind {
	return b.kind
}

// Position возвращает копию координат сущности.
func (b *BaseEntity) Position() Position {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.position
}

func (b *BaseEntity) setPosition(pos Position) Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	old := b.position
	b.position = pos
	return old
}

type movable interface {
	setPosition(pos Position) Position
}

// Relocate moves e to pos and returns its previous position.
// Reserved for the world container, which keeps its position index in step;
// gameplay code moves entities through world.Dungeon.MoveEntity.
// Returns false for entities not built on BaseEntity.
func Relocate(e Entity, pos Position) (Position, bool) {
	m, ok := e.(movable)
	if !ok {
		return Position{}, false
	}
	return m.setPosition(pos), true
}
