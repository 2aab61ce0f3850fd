package testutil

import (
	"testing"

	"github.com/udisondev/dungeon/internal/model"
	"github.com/udisondev/dungeon/internal/world"
)

// EntitiesOfKind returns the dungeon's entities of kind in load order.
func EntitiesOfKind(d *world.Dungeon, kind model.Kind) []model.Entity {
	var out []model.Entity
	for _, e := range d.Entities() {
		if e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out
}

// FirstOfKind returns the first entity of kind, failing tb if there is none.
func FirstOfKind(tb testing.TB, d *world.Dungeon, kind model.Kind) model.Entity {
	tb.Helper()
	all := EntitiesOfKind(d, kind)
	if len(all) == 0 {
		tb.Fatalf("no %s entity in dungeon", kind)
	}
	return all[0]
}
