package model

import "fmt"

// Position: координата клетки на сетке подземелья.
// Value type, передаётся по значению (immutable).
type Position struct {
	X int
	Y int
}

// NewPosition создаёт Position с указанными координатами.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Offset returns a new Position shifted by (dx, dy).
func (p Position) Offset(dx, dy int) Position {
	p.X += dx
	p.Y += dy
	return p
}

// ManhattanDistance returns |dx| + |dy| between two grid cells.
func (p Position) ManhattanDistance(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
