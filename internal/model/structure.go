package model

import "sync"

// Exit is the level exit. Reaching it is always part of the win condition.
type Exit struct {
	BaseEntity
}

// NewExit creates an exit.
func NewExit(id uint32, pos Position) *Exit {
	return &Exit{BaseEntity: newBase(id, KindExit, pos)}
}

// Door blocks movement until opened by a key with the same id.
type Door struct {
	BaseEntity
	doorID int

	openMu sync.RWMutex
	open   bool
}

// NewDoor creates a closed door.
func NewDoor(id uint32, pos Position, doorID int) *Door {
	return &Door{BaseEntity: newBase(id, KindDoor, pos), doorID: doorID}
}

// DoorID returns the id matched against keys.
func (d *Door) DoorID() int { return d.doorID }

// IsOpen reports whether the door has been unlocked.
func (d *Door) IsOpen() bool {
	d.openMu.RLock()
	defer d.openMu.RUnlock()
	return d.open
}

// Opens reports whether key unlocks this door. Ids are matched by value.
func (d *Door) Opens(key Item) bool {
	return key.Kind() == ItemKey && key.ID() == d.doorID
}

// Open unlocks the door with key. Returns false if the key does not match.
func (d *Door) Open(key Item) bool {
	if !d.Opens(key) {
		return false
	}
	d.openMu.Lock()
	defer d.openMu.Unlock()
	d.open = true
	return true
}

// Blocks reports whether the door currently blocks movement.
func (d *Door) Blocks() bool { return !d.IsOpen() }

// Portal teleports to the other portal with the same id.
type Portal struct {
	BaseEntity
	portalID int
}

// NewPortal creates a portal.
func NewPortal(id uint32, pos Position, portalID int) *Portal {
	return &Portal{BaseEntity: newBase(id, KindPortal, pos), portalID: portalID}
}

// PortalID returns the pairing id.
func (p *Portal) PortalID() int { return p.portalID }

// Pairs reports whether other is the teleport partner of p.
func (p *Portal) Pairs(other *Portal) bool {
	return other != nil && other.id != p.id && other.portalID == p.portalID
}

// Switch is a pressure plate, pressed while a boulder rests on it.
type Switch struct {
	BaseEntity
}

// NewSwitch creates a switch.
func NewSwitch(id uint32, pos Position) *Switch {
	return &Switch{BaseEntity: newBase(id, KindSwitch, pos)}
}
