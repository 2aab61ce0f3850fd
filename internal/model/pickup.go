package model

// PickUp is a positioned wrapper around a collectible Item.
// Collecting it removes the PickUp from the world.
type PickUp struct {
	BaseEntity
	item  Item
	label string
}

// NewPickUp wraps item at pos. An empty label falls back to the item kind label.
func NewPickUp(id uint32, pos Position, item Item, label string) *PickUp {
	if label == "" {
		label = item.Kind().Label()
	}
	return &PickUp{
		BaseEntity: newBase(id, KindPickUp, pos),
		item:       item,
		label:      label,
	}
}

// Item returns the wrapped item.
func (p *PickUp) Item() Item { return p.item }

// Label returns the display label.
func (p *PickUp) Label() string { return p.label }

// IsTreasure reports whether the wrapped item is treasure.
func (p *PickUp) IsTreasure() bool { return p.item.IsTreasure() }
