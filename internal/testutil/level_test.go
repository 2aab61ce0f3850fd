package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelBuilder(t *testing.T) {
	data := NewLevel(3, 2).
		Combine("OR", "treasure", "enemies").
		Entity("player", 0, 0).
		EntityWithID("door", 1, 1, 5).
		JSON(t)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, 3, doc["width"])
	assert.Len(t, doc["entities"], 2)
	assert.Equal(t, "OR", doc["goal-condition"].(map[string]any)["goal"])

	data = NewLevel(1, 1).Without("entities").JSON(t)
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.NotContains(t, string(data), "entities")
}
