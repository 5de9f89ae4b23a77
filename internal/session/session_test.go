package session

import (
	"testing"

	"go-wave-arena/internal/defs"
	"go-wave-arena/internal/economy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsAreIsolated(t *testing.T) {
	lib, err := defs.Default()
	require.NoError(t, err)

	a, err := New(lib, 1)
	require.NoError(t, err)
	b, err := New(lib, 1)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ShortID(), 8)

	a.Ledger.Credit(economy.Diamonds, 20)
	require.True(t, a.Buffs.Purchase(a.Ledger, defs.BuffThorns))

	assert.Equal(t, 1, a.Buffs.Level(defs.BuffThorns))
	assert.Equal(t, 0, b.Buffs.Level(defs.BuffThorns))
	assert.Equal(t, 0, b.Ledger.Diamonds())
}

func TestSessionRequiresLibrary(t *testing.T) {
	_, err := New(nil, 0)
	require.Error(t, err)
}
