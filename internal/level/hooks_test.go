package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeon/internal/model"
)

func TestDispatch_AllVariants(t *testing.T) {
	pos := model.NewPosition(1, 1)
	var got []string
	hooks := HookFuncs{
		Player:    func(*model.Player) { got = append(got, "player") },
		Wall:      func(*model.Wall) { got = append(got, "wall") },
		Boulder:   func(*model.Boulder) { got = append(got, "boulder") },
		PickUp:    func(*model.PickUp) { got = append(got, "pickup") },
		Gnome:     func(*model.Enemy) { got = append(got, "gnome") },
		Hound:     func(*model.Enemy) { got = append(got, "hound") },
		CamoGnome: func(*model.Enemy) { got = append(got, "camo_gnome") },
		Exit:      func(*model.Exit) { got = append(got, "exit") },
		Door:      func(*model.Door) { got = append(got, "door") },
		Portal:    func(*model.Portal) { got = append(got, "portal") },
		Switch:    func(*model.Switch) { got = append(got, "switch") },
	}

	entities := []model.Entity{
		model.NewPlayer(1, pos),
		model.NewWall(2, pos),
		model.NewBoulder(3, pos),
		model.NewPickUp(4, pos, model.NewItem(model.ItemBow), ""),
		model.NewGnome(5, pos),
		model.NewHound(6, pos),
		model.NewCamoGnome(7, pos),
		model.NewExit(8, pos),
		model.NewDoor(9, pos, 1),
		model.NewPortal(10, pos, 1),
		model.NewSwitch(11, pos),
	}
	for _, e := range entities {
		require.NoError(t, Dispatch(hooks, e))
	}

	want := make([]string, 0, len(entities))
	for _, e := range entities {
		want = append(want, e.Kind().String())
	}
	assert.Equal(t, want, got)
}

type fakeEntity struct{ kind model.Kind }

func (f fakeEntity) ID() uint32               { return 99 }
func (f fakeEntity) Kind() model.Kind         { return f.kind }
func (f fakeEntity) Position() model.Position { return model.Position{} }

func TestDispatch_VariantMismatch(t *testing.T) {
	for _, kind := range []model.Kind{model.KindWall, model.Kind(200)} {
		err := Dispatch(NopHooks{}, fakeEntity{kind: kind})
		assert.Error(t, err, "kind %s", kind)
	}
}

func TestHookFuncs_NilFieldsSkipped(t *testing.T) {
	var h HookFuncs
	assert.NotPanics(t, func() {
		require.NoError(t, Dispatch(h, model.NewExit(1, model.Position{})))
		require.NoError(t, Dispatch(NopHooks{}, model.NewExit(1, model.Position{})))
	})
}
