package model

// Player is a controllable actor. A level holds one primary player and
// optionally a co-op player.
type Player struct {
	BaseEntity
	coop bool
}

// NewPlayer creates the primary player.
func NewPlayer(id uint32, pos Position) *Player {
	return &Player{BaseEntity: newBase(id, KindPlayer, pos)}
}

// NewCoopPlayer creates the second, independently controlled player.
func NewCoopPlayer(id uint32, pos Position) *Player {
	return &Player{BaseEntity: newBase(id, KindPlayer, pos), coop: true}
}

// IsCoop reports whether this is the co-op player.
func (p *Player) IsCoop() bool {
	return p.coop
}

// Enemy is a hostile mobile actor. Gnome, Hound and CamoGnome share the struct
// and differ by Kind; movement and attack behavior live outside this package.
type Enemy struct {
	BaseEntity
}

// NewGnome creates a ground enemy.
func NewGnome(id uint32, pos Position) *Enemy {
	return &Enemy{BaseEntity: newBase(id, KindGnome, pos)}
}

// NewHound creates a ranged enemy.
func NewHound(id uint32, pos Position) *Enemy {
	return &Enemy{BaseEntity: newBase(id, KindHound, pos)}
}

// NewCamoGnome creates the camouflaged ground enemy.
func NewCamoGnome(id uint32, pos Position) *Enemy {
	return &Enemy{BaseEntity: newBase(id, KindCamoGnome, pos)}
}

// IsCamouflaged reports whether the enemy is hidden from the player until close.
func (e *Enemy) IsCamouflaged() bool {
	return e.kind == KindCamoGnome
}

// IsRanged reports whether the enemy attacks from a distance.
func (e *Enemy) IsRanged() bool {
	return e.kind == KindHound
}
