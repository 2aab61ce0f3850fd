package level

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/dungeon/internal/model"
)

func TestTypeNames(t *testing.T) {
	want := []string{
		"boulder", "bow", "camo_gnome", "door", "exit", "gnome", "hound", "invincibility",
		"key", "player", "player_coop", "portal", "switch", "sword", "treasure", "wall",
	}
	assert.Equal(t, want, TypeNames())
}

func TestVariantOf(t *testing.T) {
	tests := []struct {
		typeName string
		want     model.Kind
	}{
		{TypePlayer, model.KindPlayer},
		{TypePlayerCoop, model.KindPlayer},
		{TypeTreasure, model.KindPickUp},
		{TypeSword, model.KindPickUp},
		{TypeBow, model.KindPickUp},
		{TypeInvincibility, model.KindPickUp},
		{TypeKey, model.KindPickUp},
		{TypeCamoGnome, model.KindCamoGnome},
		{TypeDoor, model.KindDoor},
	}
	for _, tt := range tests {
		got, ok := VariantOf(tt.typeName)
		if !ok || got != tt.want {
			t.Errorf("VariantOf(%q) = %v, %v; want %v, true", tt.typeName, got, ok, tt.want)
		}
	}

	if _, ok := VariantOf("bogus"); ok {
		t.Error("VariantOf(bogus) reported ok")
	}
}

func TestRequiresID(t *testing.T) {
	for _, name := range TypeNames() {
		want := name == TypeKey || name == TypeDoor || name == TypePortal
		assert.Equal(t, want, RequiresID(name), name)
	}
}

func TestRegistryBuildsDeclaredVariant(t *testing.T) {
	for name, et := range entityTypes {
		e := et.build(1, model.NewPosition(2, 3), 4)
		assert.Equal(t, et.kind, e.Kind(), name)
		assert.Equal(t, model.NewPosition(2, 3), e.Position(), name)
	}
}
