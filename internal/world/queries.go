package world

import "github.com/udisondev/dungeon/internal/model"

// PlayerAtExit reports whether any registered player stands on an exit.
func (d *Dungeon) PlayerAtExit() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, p := range d.playersLocked() {
		if d.cells.hasKind(d.posOf[p.ID()], model.KindExit) {
			return true
		}
	}
	return false
}

// HasUncollectedTreasure reports whether any treasure pickup is still in the world.
func (d *Dungeon) HasUncollectedTreasure() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.treasure > 0
}

// AllSwitchesPressed reports whether every switch has a boulder on its cell.
// Vacuously true when the level has no switches.
func (d *Dungeon) AllSwitchesPressed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, e := range d.entities {
		if e.Kind() != model.KindSwitch {
			continue
		}
		if !d.cells.hasKind(d.posOf[e.ID()], model.KindBoulder) {
			return false
		}
	}
	return true
}

// HasHostiles reports whether any enemy actor remains.
func (d *Dungeon) HasHostiles() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for kind, n := range d.kinds {
		if kind.IsHostile() && n > 0 {
			return true
		}
	}
	return false
}

// IsSwitchPressed reports whether the switch with the given ID has a boulder on it.
func (d *Dungeon) IsSwitchPressed(id uint32) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.byID[id]
	if !ok || e.Kind() != model.KindSwitch {
		return false
	}
	return d.cells.hasKind(d.posOf[e.ID()], model.KindBoulder)
}

// Blocked reports whether pos holds a wall, a boulder or a closed door.
func (d *Dungeon) Blocked(pos model.Position) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, e := range d.cells.at(pos) {
		if e.Kind().IsObstacle() {
			return true
		}
		if door, ok := e.(*model.Door); ok && door.Blocks() {
			return true
		}
	}
	return false
}

// PortalPartner returns the other portal sharing p's id, nil if none.
// The first match in load order wins when several portals share an id.
func (d *Dungeon) PortalPartner(p *model.Portal) *model.Portal {
	if p == nil {
		return nil
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, e := range d.entities {
		other, ok := e.(*model.Portal)
		if ok && p.Pairs(other) {
			return other
		}
	}
	return nil
}

// DoorsFor returns the doors key opens, in load order.
func (d *Dungeon) DoorsFor(key model.Item) []*model.Door {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var doors []*model.Door
	for _, e := range d.entities {
		if door, ok := e.(*model.Door); ok && door.Opens(key) {
			doors = append(doors, door)
		}
	}
	return doors
}
