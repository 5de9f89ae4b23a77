package utils

import (
	"testing"

	"go-wave-arena/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestSeededServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestRangeIntIsInclusive(t *testing.T) {
	r := NewPRNGService(7)
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := RangeInt(r, 1, 5)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, 3, RangeInt(r, 3, 3))
}

func TestChanceBounds(t *testing.T) {
	r := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		assert.False(t, Chance(r, 0))
		assert.True(t, Chance(r, 1))
	}
}

func TestChooseWeighted(t *testing.T) {
	r := NewPRNGService(3)

	assert.Equal(t, defs.ChestKind(""), ChooseWeighted(r, nil))

	only := []defs.LootEntry{{Kind: defs.ChestSpeed, Weight: 0}, {Kind: defs.ChestAttackSpeed, Weight: 5}}
	for i := 0; i < 50; i++ {
		assert.Equal(t, defs.ChestAttackSpeed, ChooseWeighted(r, only))
	}

	zero := []defs.LootEntry{{Kind: defs.ChestSpeed}, {Kind: defs.ChestAttackSpeed}}
	assert.Equal(t, defs.ChestSpeed, ChooseWeighted(r, zero))
}
