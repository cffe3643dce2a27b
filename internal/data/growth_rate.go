package data

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// GrowthRateID identifies a growth rate (e.g. "Fast", "Erratic").
type GrowthRateID string

// Built-in growth rate IDs.
const (
	GrowthRateMedium      GrowthRateID = "Medium" // also known as Medium Fast
	GrowthRateErratic     GrowthRateID = "Erratic"
	GrowthRateFluctuating GrowthRateID = "Fluctuating"
	GrowthRateParabolic   GrowthRateID = "Parabolic" // also known as Medium Slow
	GrowthRateFast        GrowthRateID = "Fast"
	GrowthRateSlow        GrowthRateID = "Slow"
)

// unnamedGrowthRate is the display key used when a definition carries no name.
const unnamedGrowthRate = "Unnamed"

var (
	ErrInvalidLevel      = errors.New("invalid level")
	ErrInvalidExp        = errors.New("invalid exp amount")
	ErrMissingFormula    = errors.New("no exp formula defined")
	ErrInconsistentCurve = errors.New("exp curve is not monotonic")
)

// ExpFormula computes the minimum exp for a level the table does not cover.
type ExpFormula func(level int) int64

// GrowthRateDef is the registration-time description of a growth rate.
// ExpValues[0] is a sentinel; ExpValues[n] is the minimum exp for level n.
type GrowthRateDef struct {
	ID         GrowthRateID
	Name       string
	ExpValues  []int64
	ExpFormula ExpFormula
}

// GrowthRate is an immutable level <-> exp curve owned by a GrowthRateRegistry.
type GrowthRate struct {
	id        GrowthRateID
	realName  string
	expValues []int64
	formula   ExpFormula

	levels LevelSource
	tr     Translator
}

func (g *GrowthRate) ID() GrowthRateID { return g.id }
func (g *GrowthRate) RealName() string { return g.realName }
func (g *GrowthRate) HasFormula() bool { return g.formula != nil }

// TableSize returns the number of table entries, sentinel included.
func (g *GrowthRate) TableSize() int { return len(g.expValues) }

// Name returns the translated display name.
func (g *GrowthRate) Name() string {
	if g.tr == nil {
		return g.realName
	}
	return g.tr.Translate(g.realName)
}

// MaxLevel returns the level cap currently reported by the level source.
func (g *GrowthRate) MaxLevel() int {
	return g.levels.MaxLevel()
}

// MinimumExpForLevel returns the minimum exp needed to be at the given level.
// Levels above the cap are clamped to it.
func (g *GrowthRate) MinimumExpForLevel(level int) (int64, error) {
	if level <= 0 {
		return 0, fmt.Errorf("growth rate %s: level %d: %w", g.id, level, ErrInvalidLevel)
	}
	level = min(level, g.levels.MaxLevel())
	if level < len(g.expValues) {
		return g.expValues[level], nil
	}
	if g.formula == nil {
		return 0, fmt.Errorf("growth rate %s: level %d: %w", g.id, level, ErrMissingFormula)
	}
	return g.formula(level), nil
}

// MaximumExp returns the most exp a creature with this growth rate can have.
func (g *GrowthRate) MaximumExp() (int64, error) {
	return g.MinimumExpForLevel(g.levels.MaxLevel())
}

// AddExp returns a+b clamped to [0, MaximumExp()].
func (g *GrowthRate) AddExp(a, b int64) (int64, error) {
	maxExp, err := g.MaximumExp()
	if err != nil {
		return 0, err
	}
	sum := a + b
	switch {
	case b > 0 && sum < a:
		sum = math.MaxInt64
	case b < 0 && sum > a:
		sum = math.MinInt64
	}
	return max(0, min(sum, maxExp)), nil
}

// LevelFromExp returns the level of a creature that has the given exp amount:
// the greatest level whose minimum exp is <= exp.
func (g *GrowthRate) LevelFromExp(exp int64) (int, error) {
	if exp < 0 {
		return 0, fmt.Errorf("growth rate %s: exp %d: %w", g.id, exp, ErrInvalidExp)
	}
	maxLevel := g.levels.MaxLevel()
	maxExp, err := g.MinimumExpForLevel(maxLevel)
	if err != nil {
		return 0, err
	}
	if exp >= maxExp {
		return maxLevel, nil
	}

	// Thresholds are non-decreasing, so the first level above exp is found by bisection.
	var lookupErr error
	above := sort.Search(maxLevel, func(i int) bool {
		if lookupErr != nil {
			return true
		}
		v, err := g.MinimumExpForLevel(i + 1)
		if err != nil {
			lookupErr = err
			return true
		}
		return v > exp
	})
	if lookupErr != nil {
		return 0, lookupErr
	}
	// above is the 0-based index of the first level whose threshold exceeds exp,
	// so the level reached is exactly above.
	if above == 0 {
		return 0, fmt.Errorf("growth rate %s: exp %d below level 1 threshold: %w", g.id, exp, ErrInconsistentCurve)
	}
	if above == maxLevel {
		return 0, fmt.Errorf("growth rate %s: exp %d below cap but above every threshold: %w", g.id, exp, ErrInconsistentCurve)
	}
	return above, nil
}

// ExpToNextLevel returns how much exp is still needed to reach the next level.
// Returns 0 at the level cap.
func (g *GrowthRate) ExpToNextLevel(exp int64) (int64, error) {
	level, err := g.LevelFromExp(exp)
	if err != nil {
		return 0, err
	}
	if level >= g.levels.MaxLevel() {
		return 0, nil
	}
	next, err := g.MinimumExpForLevel(level + 1)
	if err != nil {
		return 0, err
	}
	return next - exp, nil
}

// validate checks that every level in [1, maxLevel] resolves and that
// thresholds never decrease.
func (g *GrowthRate) validate() error {
	maxLevel := g.levels.MaxLevel()
	var prev int64
	for level := 1; level <= maxLevel; level++ {
		v, err := g.MinimumExpForLevel(level)
		if err != nil {
			return err
		}
		if level > 1 && v < prev {
			return fmt.Errorf("growth rate %s: level %d exp %d < level %d exp %d: %w",
				g.id, level, v, level-1, prev, ErrInconsistentCurve)
		}
		prev = v
	}
	return nil
}
