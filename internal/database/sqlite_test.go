package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrates(t *testing.T) {
	db, err := New(":memory:")
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM players`).Scan(&n))
	assert.Zero(t, n)

	// Running the schema twice is harmless.
	require.NoError(t, migrate(db.DB))
}

func TestDSN(t *testing.T) {
	assert.Equal(t, ":memory:", dsn(":memory:"))
	assert.Equal(t, "file:x.db?mode=ro", dsn("file:x.db?mode=ro"))
	assert.Equal(t, "file:./blackjack.db?_busy_timeout=5000", dsn("./blackjack.db"))
}
