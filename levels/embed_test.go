package levels_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/dungeon/internal/level"
	"github.com/udisondev/dungeon/levels"
)

func TestBundledLevelsLoad(t *testing.T) {
	svc := level.NewService(level.NewFSSource(levels.FS()), level.NewLoader(level.WithStrictBounds(true)), nil)

	loaded, err := svc.LoadAll(context.Background())
	require.NoError(t, err)

	byName := make(map[string]*level.Level, len(loaded))
	for _, lvl := range loaded {
		byName[lvl.Name] = lvl
		assert.False(t, lvl.Complete(), "%s must not start complete", lvl.Name)
		assert.NotNil(t, lvl.Dungeon.Player(), "%s has no player", lvl.Name)
	}

	require.Contains(t, byName, "maze.json")
	require.Contains(t, byName, "boulders.json")
	require.Contains(t, byName, "hunt.json")
	require.Contains(t, byName, "coop.yaml")

	assert.Equal(t, 15, byName["maze.json"].Dungeon.Count())
	assert.NotNil(t, byName["coop.yaml"].Dungeon.CoopPlayer())
	assert.Equal(t, "(Reach the exit AND (Defeat all enemies AND (Collect all treasure OR Put a boulder on every switch)))",
		byName["coop.yaml"].Goal.Description())
}
