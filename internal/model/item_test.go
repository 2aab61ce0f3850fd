package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickUp_Label(t *testing.T) {
	tests := []struct {
		name  string
		item  Item
		label string
		want  string
	}{
		{"explicit label", NewItem(ItemTreasure), "Gold", "Gold"},
		{"treasure default", NewItem(ItemTreasure), "", "Treasure"},
		{"potion default", NewItem(ItemPotion), "", "Potion"},
		{"key default", NewKey(3), "", "Key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPickUp(1, Position{}, tt.item, tt.label)
			assert.Equal(t, tt.want, p.Label())
			assert.Equal(t, tt.item, p.Item())
		})
	}
}

func TestPickUp_IsTreasure(t *testing.T) {
	assert.True(t, NewPickUp(1, Position{}, NewItem(ItemTreasure), "").IsTreasure())
	assert.False(t, NewPickUp(2, Position{}, NewItem(ItemBow), "").IsTreasure())
}

func TestDoor_Open(t *testing.T) {
	d := NewDoor(1, Position{}, 7)
	assert.True(t, d.Blocks())

	assert.False(t, d.Open(NewKey(8)), "wrong key id")
	assert.False(t, d.Open(NewItem(ItemSword)), "non-key item")
	assert.False(t, d.IsOpen())

	assert.True(t, d.Open(NewKey(7)))
	assert.True(t, d.IsOpen())
	assert.False(t, d.Blocks())
}

func TestPortal_Pairs(t *testing.T) {
	a := NewPortal(1, NewPosition(0, 0), 5)
	b := NewPortal(2, NewPosition(9, 9), 5)
	c := NewPortal(3, NewPosition(4, 4), 6)

	assert.True(t, a.Pairs(b))
	assert.True(t, b.Pairs(a))
	assert.False(t, a.Pairs(c))
	assert.False(t, a.Pairs(a), "portal never pairs with itself")
	assert.False(t, a.Pairs(nil))
}
