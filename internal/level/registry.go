package level

import (
	"fmt"
	"slices"

	"github.com/udisondev/dungeon/internal/model"
	"github.com/udisondev/dungeon/internal/world"
)

// Entity type names accepted in level descriptions.
const (
	TypePlayer        = "player"
	TypePlayerCoop    = "player_coop"
	TypeWall          = "wall"
	TypeBoulder       = "boulder"
	TypeTreasure      = "treasure"
	TypeSword         = "sword"
	TypeBow           = "bow"
	TypeInvincibility = "invincibility"
	TypeKey           = "key"
	TypeGnome         = "gnome"
	TypeHound         = "hound"
	TypeCamoGnome     = "camo_gnome"
	TypeExit          = "exit"
	TypeDoor          = "door"
	TypePortal        = "portal"
	TypeSwitch        = "switch"
)

// entityType describes how one declared type name becomes an entity.
type entityType struct {
	kind    model.Kind
	needsID bool
	build   func(oid uint32, pos model.Position, id int) model.Entity
	place   func(d *world.Dungeon, e model.Entity) error
}

func addEntity(d *world.Dungeon, e model.Entity) error { return d.AddEntity(e) }

func setPlayer(d *world.Dungeon, e model.Entity) error {
	return d.SetPlayer(e.(*model.Player))
}

func setCoopPlayer(d *world.Dungeon, e model.Entity) error {
	return d.SetCoopPlayer(e.(*model.Player))
}

func pickup(kind model.ItemKind) entityType {
	return entityType{
		kind: model.KindPickUp,
		build: func(oid uint32, pos model.Position, _ int) model.Entity {
			return model.NewPickUp(oid, pos, model.NewItem(kind), "")
		},
		place: addEntity,
	}
}

func simple(kind model.Kind, ctor func(uint32, model.Position) model.Entity) entityType {
	return entityType{
		kind:  kind,
		build: func(oid uint32, pos model.Position, _ int) model.Entity { return ctor(oid, pos) },
		place: addEntity,
	}
}

// entityTypes is the closed type-name table. Adding a type is one entry here.
var entityTypes = map[string]entityType{
	TypePlayer: {
		kind:  model.KindPlayer,
		build: func(oid uint32, pos model.Position, _ int) model.Entity { return model.NewPlayer(oid, pos) },
		place: setPlayer,
	},
	TypePlayerCoop: {
		kind:  model.KindPlayer,
		build: func(oid uint32, pos model.Position, _ int) model.Entity { return model.NewCoopPlayer(oid, pos) },
		place: setCoopPlayer,
	},
	TypeWall:          simple(model.KindWall, func(oid uint32, pos model.Position) model.Entity { return model.NewWall(oid, pos) }),
	TypeBoulder:       simple(model.KindBoulder, func(oid uint32, pos model.Position) model.Entity { return model.NewBoulder(oid, pos) }),
	TypeGnome:         simple(model.KindGnome, func(oid uint32, pos model.Position) model.Entity { return model.NewGnome(oid, pos) }),
	TypeHound:         simple(model.KindHound, func(oid uint32, pos model.Position) model.Entity { return model.NewHound(oid, pos) }),
	TypeCamoGnome:     simple(model.KindCamoGnome, func(oid uint32, pos model.Position) model.Entity { return model.NewCamoGnome(oid, pos) }),
	TypeExit:          simple(model.KindExit, func(oid uint32, pos model.Position) model.Entity { return model.NewExit(oid, pos) }),
	TypeSwitch:        simple(model.KindSwitch, func(oid uint32, pos model.Position) model.Entity { return model.NewSwitch(oid, pos) }),
	TypeTreasure:      pickup(model.ItemTreasure),
	TypeSword:         pickup(model.ItemSword),
	TypeBow:           pickup(model.ItemBow),
	TypeInvincibility: pickup(model.ItemPotion),
	TypeKey: {
		kind:    model.KindPickUp,
		needsID: true,
		build: func(oid uint32, pos model.Position, id int) model.Entity {
			return model.NewPickUp(oid, pos, model.NewKey(id), "")
		},
		place: addEntity,
	},
	TypeDoor: {
		kind:    model.KindDoor,
		needsID: true,
		build:   func(oid uint32, pos model.Position, id int) model.Entity { return model.NewDoor(oid, pos, id) },
		place:   addEntity,
	},
	TypePortal: {
		kind:    model.KindPortal,
		needsID: true,
		build:   func(oid uint32, pos model.Position, id int) model.Entity { return model.NewPortal(oid, pos, id) },
		place:   addEntity,
	},
}

// VariantOf returns the entity variant a type name produces.
func VariantOf(typeName string) (model.Kind, bool) {
	et, ok := entityTypes[typeName]
	return et.kind, ok
}

// TypeNames returns every recognized type name, sorted.
func TypeNames() []string {
	names := make([]string, 0, len(entityTypes))
	for name := range entityTypes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RequiresID reports whether the type needs an "id" field.
func RequiresID(typeName string) bool {
	return entityTypes[typeName].needsID
}

func lookupType(typeName string) (entityType, error) {
	et, ok := entityTypes[typeName]
	if !ok {
		return entityType{}, fmt.Errorf("entity type %q: %w", typeName, ErrMalformed)
	}
	return et, nil
}
