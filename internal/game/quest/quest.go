// Package quest implements the dungeon win-condition tree.
// Atomic goals (exit, treasure, boulders, enemies) are composed with AND/OR
// combinators and evaluated against a read-only world State.
package quest

import (
	"slices"
	"strings"
)

//go:generate go tool mockgen -destination=./mocks/mission_mock.go -package=mocks . Mission,State

// State is the query surface goals are evaluated against.
// Implemented by world.Dungeon.
type State interface {
	PlayerAtExit() bool
	HasUncollectedTreasure() bool
	AllSwitchesPressed() bool
	HasHostiles() bool
}

// Mission is a node of the goal tree.
// IsComplete must not mutate s and must return the same result for the same state.
type Mission interface {
	IsComplete(s State) bool
	Description() string
}

// Composite is implemented by missions that hold child missions.
type Composite interface {
	Mission
	Children() []Mission
}

// Combinator names accepted in level descriptions.
const (
	CombinatorAnd = "AND"
	CombinatorOr  = "OR"
)

// Atomic goal names accepted in level descriptions.
const (
	GoalExit     = "exit"
	GoalTreasure = "treasure"
	GoalBoulders = "boulders"
	GoalEnemies  = "enemies"
)

// atomics maps goal names to constructors. Fixed table, not extended at runtime.
var atomics = map[string]func() Mission{
	GoalExit:     func() Mission { return NewExitQuest() },
	GoalTreasure: func() Mission { return NewTreasureQuest() },
	GoalBoulders: func() Mission { return NewBouldersQuest() },
	GoalEnemies:  func() Mission { return NewEnemyQuest() },
}

// Atomic builds the atomic goal registered under name.
// Returns false for unknown names and for the AND/OR combinators.
func Atomic(name string) (Mission, bool) {
	ctor, ok := atomics[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// AtomicNames returns the registered atomic goal names, sorted.
func AtomicNames() []string {
	names := make([]string, 0, len(atomics))
	for name := range atomics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsCombinator reports whether name is AND or OR.
func IsCombinator(name string) bool {
	return name == CombinatorAnd || name == CombinatorOr
}

// Walk visits m and its descendants depth-first, parents before children.
// Stops early when fn returns false.
func Walk(m Mission, fn func(Mission) bool) bool {
	if !fn(m) {
		return false
	}
	c, ok := m.(Composite)
	if !ok {
		return true
	}
	for _, child := range c.Children() {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// Pending returns the atomic goals of m that are not yet complete, in tree order.
// Useful for "what's left" displays; composites themselves are not listed.
func Pending(m Mission, s State) []Mission {
	var out []Mission
	Walk(m, func(node Mission) bool {
		if _, ok := node.(Composite); ok {
			return true
		}
		if !node.IsComplete(s) {
			out = append(out, node)
		}
		return true
	})
	return out
}

func joinDescriptions(children []Mission, sep string) string {
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = c.Description()
	}
	return "(" + strings.Join(parts, sep) + ")"
}
