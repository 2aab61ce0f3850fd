package testutil

import (
	"encoding/json"
	"testing"
)

// LevelBuilder assembles level descriptions for tests.
type LevelBuilder struct {
	doc map[string]any
}

// NewLevel starts a width×height level whose goal is "exit".
func NewLevel(width, height int) *LevelBuilder {
	return &LevelBuilder{doc: map[string]any{
		"width":          width,
		"height":         height,
		"goal-condition": map[string]any{"goal": "exit"},
		"entities":       []any{},
	}}
}

// Goal sets an atomic goal name.
func (b *LevelBuilder) Goal(name string) *LevelBuilder {
	b.doc["goal-condition"] = map[string]any{"goal": name}
	return b
}

// Combine sets an AND/OR goal over atomic subgoals.
func (b *LevelBuilder) Combine(combinator string, subgoals ...string) *LevelBuilder {
	subs := make([]any, len(subgoals))
	for i, s := range subgoals {
		subs[i] = map[string]any{"goal": s}
	}
	b.doc["goal-condition"] = map[string]any{"goal": combinator, "subgoals": subs}
	return b
}

// Entity appends an entity.
func (b *LevelBuilder) Entity(typ string, x, y int) *LevelBuilder {
	return b.add(map[string]any{"type": typ, "x": x, "y": y})
}

// EntityWithID appends an entity carrying an id (keys, doors, portals).
func (b *LevelBuilder) EntityWithID(typ string, x, y, id int) *LevelBuilder {
	return b.add(map[string]any{"type": typ, "x": x, "y": y, "id": id})
}

// Without deletes a top-level field, for malformed-input tests.
func (b *LevelBuilder) Without(field string) *LevelBuilder {
	delete(b.doc, field)
	return b
}

func (b *LevelBuilder) add(e map[string]any) *LevelBuilder {
	b.doc["entities"] = append(b.doc["entities"].([]any), e)
	return b
}

// JSON encodes the level, failing tb on error.
func (b *LevelBuilder) JSON(tb testing.TB) []byte {
	tb.Helper()
	data, err := json.Marshal(b.doc)
	if err != nil {
		tb.Fatalf("encoding level: %v", err)
	}
	return data
}
