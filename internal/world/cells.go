package world

import (
	"slices"

	"github.com/udisondev/dungeon/internal/model"
)

// cellIndex maps grid positions to the entities stacked there.
// Maintained by Dungeon on every add/remove/move; never rebuilt lazily.
type cellIndex struct {
	cells map[model.Position][]model.Entity
}

func newCellIndex() *cellIndex {
	return &cellIndex{cells: make(map[model.Position][]model.Entity, 64)}
}

func (c *cellIndex) add(e model.Entity, pos model.Position) {
	c.cells[pos] = append(c.cells[pos], e)
}

func (c *cellIndex) remove(e model.Entity, pos model.Position) {
	stack := c.cells[pos]
	stack = slices.DeleteFunc(stack, func(other model.Entity) bool {
		return other.ID() == e.ID()
	})
	if len(stack) == 0 {
		delete(c.cells, pos)
		return
	}
	c.cells[pos] = stack
}

// at returns the entities at pos in insertion order. The slice is shared, do not modify.
func (c *cellIndex) at(pos model.Position) []model.Entity {
	return c.cells[pos]
}

func (c *cellIndex) hasKind(pos model.Position, kind model.Kind) bool {
	for _, e := range c.cells[pos] {
		if e.Kind() == kind {
			return true
		}
	}
	return false
}
