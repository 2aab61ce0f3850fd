package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeon/internal/model"
)

func TestDungeon_PlayerAtExit(t *testing.T) {
	d := NewDungeon(5, 5)
	exit := model.NewExit(d.NextID(), pos(4, 4))
	p1 := model.NewPlayer(d.NextID(), pos(0, 0))
	p2 := model.NewCoopPlayer(d.NextID(), pos(1, 0))
	require.NoError(t, d.AddEntity(exit))

	assert.False(t, d.PlayerAtExit(), "no players")

	require.NoError(t, d.SetPlayer(p1))
	require.NoError(t, d.SetCoopPlayer(p2))
	assert.False(t, d.PlayerAtExit())

	require.NoError(t, d.MoveEntity(p2.ID(), exit.Position()))
	assert.True(t, d.PlayerAtExit(), "co-op player on the exit counts")

	require.NoError(t, d.MoveEntity(p2.ID(), pos(3, 3)))
	assert.False(t, d.PlayerAtExit())
}

func TestDungeon_HasUncollectedTreasure(t *testing.T) {
	d := NewDungeon(5, 5)
	assert.False(t, d.HasUncollectedTreasure())

	sword := model.NewPickUp(d.NextID(), pos(0, 1), model.NewItem(model.ItemSword), "")
	require.NoError(t, d.AddEntity(sword))
	assert.False(t, d.HasUncollectedTreasure(), "non-treasure pickups do not count")

	t1 := model.NewPickUp(d.NextID(), pos(1, 1), model.NewItem(model.ItemTreasure), "")
	t2 := model.NewPickUp(d.NextID(), pos(2, 1), model.NewItem(model.ItemTreasure), "")
	require.NoError(t, d.AddEntity(t1))
	require.NoError(t, d.AddEntity(t2))
	assert.True(t, d.HasUncollectedTreasure())

	_, err := d.RemoveEntity(t1.ID())
	require.NoError(t, err)
	assert.True(t, d.HasUncollectedTreasure())

	_, err = d.RemoveEntity(t2.ID())
	require.NoError(t, err)
	assert.False(t, d.HasUncollectedTreasure())
}

func TestDungeon_AllSwitchesPressed(t *testing.T) {
	d := NewDungeon(5, 5)
	assert.True(t, d.AllSwitchesPressed(), "no switches is vacuously pressed")

	s1 := model.NewSwitch(d.NextID(), pos(1, 1))
	s2 := model.NewSwitch(d.NextID(), pos(3, 3))
	b1 := model.NewBoulder(d.NextID(), pos(1, 1))
	b2 := model.NewBoulder(d.NextID(), pos(0, 3))
	for _, e := range []model.Entity{s1, s2, b1, b2} {
		require.NoError(t, d.AddEntity(e))
	}

	assert.True(t, d.IsSwitchPressed(s1.ID()))
	assert.False(t, d.IsSwitchPressed(s2.ID()))
	assert.False(t, d.IsSwitchPressed(b1.ID()), "not a switch")
	assert.False(t, d.AllSwitchesPressed())

	require.NoError(t, d.MoveEntity(b2.ID(), s2.Position()))
	assert.True(t, d.AllSwitchesPressed())

	require.NoError(t, d.MoveEntity(b1.ID(), pos(2, 1)))
	assert.False(t, d.AllSwitchesPressed())

	_, err := d.RemoveEntity(s1.ID())
	require.NoError(t, err)
	assert.True(t, d.AllSwitchesPressed())
}

func TestDungeon_HasHostiles(t *testing.T) {
	tests := []struct {
		name  string
		build func(d *Dungeon) model.Entity
	}{
		{"gnome", func(d *Dungeon) model.Entity { return model.NewGnome(d.NextID(), pos(1, 1)) }},
		{"hound", func(d *Dungeon) model.Entity { return model.NewHound(d.NextID(), pos(1, 1)) }},
		{"camo gnome", func(d *Dungeon) model.Entity { return model.NewCamoGnome(d.NextID(), pos(1, 1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDungeon(5, 5)
			require.NoError(t, d.AddEntity(model.NewWall(d.NextID(), pos(0, 0))))
			assert.False(t, d.HasHostiles())

			e := tt.build(d)
			require.NoError(t, d.AddEntity(e))
			assert.True(t, d.HasHostiles())

			_, err := d.RemoveEntity(e.ID())
			require.NoError(t, err)
			assert.False(t, d.HasHostiles())
		})
	}
}

func TestDungeon_Blocked(t *testing.T) {
	d := NewDungeon(5, 5)
	door := model.NewDoor(d.NextID(), pos(2, 0), 4)
	require.NoError(t, d.AddEntity(model.NewWall(d.NextID(), pos(0, 0))))
	require.NoError(t, d.AddEntity(model.NewBoulder(d.NextID(), pos(1, 0))))
	require.NoError(t, d.AddEntity(door))
	require.NoError(t, d.AddEntity(model.NewSwitch(d.NextID(), pos(3, 0))))

	assert.True(t, d.Blocked(pos(0, 0)))
	assert.True(t, d.Blocked(pos(1, 0)))
	assert.True(t, d.Blocked(pos(2, 0)))
	assert.False(t, d.Blocked(pos(3, 0)))
	assert.False(t, d.Blocked(pos(4, 4)))

	require.True(t, door.Open(model.NewKey(4)))
	assert.False(t, d.Blocked(pos(2, 0)))
}

func TestDungeon_PortalPartner(t *testing.T) {
	d := NewDungeon(5, 5)
	a := model.NewPortal(d.NextID(), pos(0, 0), 1)
	b := model.NewPortal(d.NextID(), pos(4, 4), 1)
	lonely := model.NewPortal(d.NextID(), pos(2, 2), 2)
	for _, e := range []model.Entity{a, b, lonely} {
		require.NoError(t, d.AddEntity(e))
	}

	assert.Same(t, b, d.PortalPartner(a))
	assert.Same(t, a, d.PortalPartner(b))
	assert.Nil(t, d.PortalPartner(lonely))
	assert.Nil(t, d.PortalPartner(nil))
}

func TestDungeon_DoorsFor(t *testing.T) {
	d := NewDungeon(5, 5)
	d1 := model.NewDoor(d.NextID(), pos(0, 0), 1)
	d2 := model.NewDoor(d.NextID(), pos(1, 0), 2)
	d3 := model.NewDoor(d.NextID(), pos(2, 0), 1)
	for _, e := range []model.Entity{d1, d2, d3} {
		require.NoError(t, d.AddEntity(e))
	}

	assert.Equal(t, []*model.Door{d1, d3}, d.DoorsFor(model.NewKey(1)))
	assert.Empty(t, d.DoorsFor(model.NewKey(9)))
	assert.Empty(t, d.DoorsFor(model.NewItem(model.ItemSword)))
}

func TestDungeon_RemoveAfterMove(t *testing.T) {
	d := NewDungeon(5, 5)
	sw := model.NewSwitch(d.NextID(), pos(1, 1))
	b := model.NewBoulder(d.NextID(), pos(0, 1))
	require.NoError(t, d.AddEntity(sw))
	require.NoError(t, d.AddEntity(b))

	require.NoError(t, d.MoveEntity(b.ID(), pos(1, 1)))
	require.True(t, d.AllSwitchesPressed())

	_, err := d.RemoveEntity(b.ID())
	require.NoError(t, err)

	assert.Equal(t, 1, d.Count())
	assert.False(t, d.AllSwitchesPressed())
	assert.Len(t, d.EntitiesAt(pos(1, 1)), 1, "boulder left no trace on the switch cell")
	assert.Empty(t, d.EntitiesAt(pos(0, 1)))
	_, ok := d.PositionOf(b.ID())
	assert.False(t, ok)
}

func TestDungeon_QueriesUseIndexedPosition(t *testing.T) {
	d := NewDungeon(5, 5)
	sw := model.NewSwitch(d.NextID(), pos(1, 1))
	b := model.NewBoulder(d.NextID(), pos(1, 1))
	require.NoError(t, d.AddEntity(sw))
	require.NoError(t, d.AddEntity(b))

	// Moved behind the dungeon's back: the index keeps answering for (1,1)
	// and removal still finds the entry.
	model.Relocate(b, pos(3, 3))
	assert.True(t, d.AllSwitchesPressed())
	got, _ := d.PositionOf(b.ID())
	assert.Equal(t, pos(1, 1), got)

	_, err := d.RemoveEntity(b.ID())
	require.NoError(t, err)
	assert.False(t, d.AllSwitchesPressed())
	assert.Len(t, d.EntitiesAt(pos(1, 1)), 1)
	assert.Empty(t, d.EntitiesAt(pos(3, 3)))
}
