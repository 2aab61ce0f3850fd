package model

// Wall is an immovable obstacle.
type Wall struct {
	BaseEntity
}

// NewWall creates a wall.
func NewWall(id uint32, pos Position) *Wall {
	return &Wall{BaseEntity: newBase(id, KindWall, pos)}
}

// Boulder is a pushable obstacle that presses switches it rests on.
type Boulder struct {
	BaseEntity
}

// NewBoulder creates a boulder.
func NewBoulder(id uint32, pos Position) *Boulder {
	return &Boulder{BaseEntity: newBase(id, KindBoulder, pos)}
}
