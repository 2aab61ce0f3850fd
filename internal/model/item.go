package model

// ItemKind identifies what a PickUp carries.
type ItemKind uint8

const (
	ItemTreasure ItemKind = iota
	ItemSword
	ItemBow
	ItemPotion
	ItemKey
)

var itemLabels = [...]string{
	ItemTreasure: "Treasure",
	ItemSword:    "Sword",
	ItemBow:      "Bow",
	ItemPotion:   "Potion",
	ItemKey:      "Key",
}

// Label is the display label a PickUp shows for this item kind.
func (k ItemKind) Label() string {
	if int(k) < len(itemLabels) {
		return itemLabels[k]
	}
	return "Unknown"
}

func (k ItemKind) String() string {
	return k.Label()
}

// Item is a collectible carried by a PickUp. Only keys use the id.
type Item struct {
	kind ItemKind
	id   int
}

// NewItem creates an item of the given kind without an id.
func NewItem(kind ItemKind) Item {
	return Item{kind: kind}
}

// NewKey creates a key that opens doors with the same id.
func NewKey(id int) Item {
	return Item{kind: ItemKey, id: id}
}

// Kind returns the item kind.
func (i Item) Kind() ItemKind { return i.kind }

// ID returns the key id (0 for non-key items).
func (i Item) ID() int { return i.id }

// IsTreasure reports whether the item counts towards the treasure goal.
func (i Item) IsTreasure() bool { return i.kind == ItemTreasure }
