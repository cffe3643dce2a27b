package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadGrowthRates(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, 100)

	assert.Equal(t, 6, reg.Count())
	assert.Equal(t, []GrowthRateID{
		GrowthRateMedium,
		GrowthRateErratic,
		GrowthRateFluctuating,
		GrowthRateParabolic,
		GrowthRateFast,
		GrowthRateSlow,
	}, reg.Keys())

	for _, rate := range reg.All() {
		assert.Equal(t, 101, rate.TableSize(), rate.ID())
		assert.True(t, rate.HasFormula(), rate.ID())
	}
}

func TestLoadGrowthRates_Twice(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, 100)
	err := LoadGrowthRates(reg)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 6, reg.Count())
}

func TestGrowthRateRegistry_DuplicateKeepsExisting(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, 100)

	err := reg.Register(GrowthRateDef{
		ID:        GrowthRateFast,
		Name:      "Impostor",
		ExpValues: []int64{-1, 0, 1},
	})
	require.ErrorIs(t, err, ErrDuplicateID)

	fast := mustGet(t, reg, GrowthRateFast)
	assert.Equal(t, "Fast", fast.RealName())
	got, err := fast.MinimumExpForLevel(100)
	require.NoError(t, err)
	assert.Equal(t, int64(800000), got)
	assert.Len(t, reg.Keys(), 6)
}

func TestGrowthRateRegistry_InvalidDefinition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		def  GrowthRateDef
	}{
		{"empty id", GrowthRateDef{ExpValues: []int64{-1, 0}}},
		{"no table or formula", GrowthRateDef{ID: "Empty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewGrowthRateRegistry(FixedMaxLevel(100), nil)
			err := reg.Register(tt.def)
			assert.ErrorIs(t, err, ErrInvalidDefinition)
			assert.Zero(t, reg.Count())
		})
	}
}

func TestGrowthRateRegistry_FormulaOnly(t *testing.T) {
	t.Parallel()

	reg := NewGrowthRateRegistry(FixedMaxLevel(10), nil)
	require.NoError(t, reg.Register(GrowthRateDef{
		ID: "Linear",
		ExpFormula: func(level int) int64 {
			return int64(level-1) * 100
		},
	}))
	require.NoError(t, reg.Validate(context.Background()))

	level, err := mustGet(t, reg, "Linear").LevelFromExp(450)
	require.NoError(t, err)
	assert.Equal(t, 5, level)
}

func TestGrowthRateRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, 100)

	_, err := reg.Get("Glacial")
	assert.ErrorIs(t, err, ErrNotFound)

	_, ok := reg.TryGet("Glacial")
	assert.False(t, ok)
	assert.False(t, reg.Exists("Glacial"))

	rate, ok := reg.TryGet(GrowthRateErratic)
	require.True(t, ok)
	assert.Equal(t, GrowthRateErratic, rate.ID())
	assert.True(t, reg.Exists(GrowthRateErratic))
}

func TestGrowthRateRegistry_RegisterCopiesTable(t *testing.T) {
	t.Parallel()

	values := []int64{-1, 0, 10, 30}
	reg := NewGrowthRateRegistry(FixedMaxLevel(3), nil)
	require.NoError(t, reg.Register(GrowthRateDef{ID: "Copied", ExpValues: values}))

	values[3] = 1

	got, err := mustGet(t, reg, "Copied").MinimumExpForLevel(3)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got)
}

func TestGrowthRateRegistry_KeysIsSnapshot(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, 100)
	keys := reg.Keys()
	keys[0] = "Mutated"

	assert.Equal(t, GrowthRateMedium, reg.Keys()[0])
}

func TestGrowthRateRegistry_Validate(t *testing.T) {
	t.Parallel()

	for _, maxLevel := range []int{1, 100, 255} {
		reg := newTestRegistry(t, maxLevel)
		assert.NoError(t, reg.Validate(context.Background()), "max level %d", maxLevel)
	}
}

func TestGrowthRateRegistry_Validate_MissingFormula(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, 120)
	require.NoError(t, reg.Register(GrowthRateDef{
		ID:        "TableOnly",
		ExpValues: growthRateDefs[0].ExpValues,
	}))

	err := reg.Validate(context.Background())
	assert.ErrorIs(t, err, ErrMissingFormula)
}

func TestGrowthRateRegistry_Validate_Decreasing(t *testing.T) {
	t.Parallel()

	reg := NewGrowthRateRegistry(FixedMaxLevel(4), nil)
	require.NoError(t, reg.Register(GrowthRateDef{
		ID:        "Dip",
		ExpValues: []int64{-1, 0, 50, 40, 90},
	}))

	err := reg.Validate(context.Background())
	assert.ErrorIs(t, err, ErrInconsistentCurve)
}

func TestGrowthRateRegistry_Validate_Canceled(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := reg.Validate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewGrowthRateRegistry_NilLevelSource(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewGrowthRateRegistry(nil, nil)
	})
}
