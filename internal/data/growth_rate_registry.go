package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	ErrDuplicateID       = errors.New("growth rate already registered")
	ErrNotFound          = errors.New("growth rate not found")
	ErrInvalidDefinition = errors.New("invalid growth rate definition")
)

// LevelSource reports the current level cap. It is queried on every
// conversion and must answer before any other game state is loaded.
type LevelSource interface {
	MaxLevel() int
}

// FixedMaxLevel is a LevelSource with a constant cap.
type FixedMaxLevel int

func (f FixedMaxLevel) MaxLevel() int { return int(f) }

// Translator resolves display-name keys. Used for presentation only.
type Translator interface {
	Translate(key string) string
}

// GrowthRateRegistry holds growth rates by ID.
// Populated once during data loading, read-only afterwards.
type GrowthRateRegistry struct {
	mu     sync.RWMutex
	rates  map[GrowthRateID]*GrowthRate
	order  []GrowthRateID
	levels LevelSource
	tr     Translator
}

// NewGrowthRateRegistry creates an empty registry.
// tr may be nil, in which case names are returned untranslated.
func NewGrowthRateRegistry(levels LevelSource, tr Translator) *GrowthRateRegistry {
	if levels == nil {
		panic("data: growth rate registry requires a level source")
	}
	return &GrowthRateRegistry{
		rates:  make(map[GrowthRateID]*GrowthRate, 8),
		levels: levels,
		tr:     tr,
	}
}

// Register adds a growth rate. An existing entry with the same ID is kept
// and ErrDuplicateID is returned.
func (r *GrowthRateRegistry) Register(def GrowthRateDef) error {
	if def.ID == "" {
		return fmt.Errorf("registering growth rate: empty id: %w", ErrInvalidDefinition)
	}
	if len(def.ExpValues) == 0 && def.ExpFormula == nil {
		return fmt.Errorf("registering growth rate %s: no exp table or formula: %w", def.ID, ErrInvalidDefinition)
	}

	name := def.Name
	if name == "" {
		name = unnamedGrowthRate
	}
	rate := &GrowthRate{
		id:        def.ID,
		realName:  name,
		expValues: slices.Clone(def.ExpValues),
		formula:   def.ExpFormula,
		levels:    r.levels,
		tr:        r.tr,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rates[def.ID]; exists {
		return fmt.Errorf("registering growth rate %s: %w", def.ID, ErrDuplicateID)
	}
	r.rates[def.ID] = rate
	r.order = append(r.order, def.ID)
	return nil
}

// Get returns the growth rate with the given ID.
func (r *GrowthRateRegistry) Get(id GrowthRateID) (*GrowthRate, error) {
	rate, ok := r.TryGet(id)
	if !ok {
		return nil, fmt.Errorf("growth rate %q: %w", id, ErrNotFound)
	}
	return rate, nil
}

// TryGet returns the growth rate with the given ID, or false if absent.
func (r *GrowthRateRegistry) TryGet(id GrowthRateID) (*GrowthRate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rate, ok := r.rates[id]
	return rate, ok
}

func (r *GrowthRateRegistry) Exists(id GrowthRateID) bool {
	_, ok := r.TryGet(id)
	return ok
}

// Count returns the number of registered growth rates.
func (r *GrowthRateRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rates)
}

// Keys returns growth rate IDs in registration order.
func (r *GrowthRateRegistry) Keys() []GrowthRateID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// All returns growth rates in registration order.
func (r *GrowthRateRegistry) All() []*GrowthRate {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*GrowthRate, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.rates[id])
	}
	return out
}

// Validate checks every registered growth rate against the current level cap:
// each level in [1, cap] must resolve and thresholds must not decrease.
func (r *GrowthRateRegistry) Validate(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, rate := range r.All() {
		rate := rate
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return rate.validate()
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("validating growth rates: %w", err)
	}
	slog.Debug("growth rates validated", "count", r.Count(), "max_level", r.levels.MaxLevel())
	return nil
}
