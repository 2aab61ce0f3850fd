package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_AlreadyCurrent(t *testing.T) {
	setupTestDB(t)

	version, err := RunMigrations(context.Background(), testDSN)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}
