package config

import "sync/atomic"

// LevelCap is the process-wide maximum level.
// It is read by growth rates on every conversion, possibly before the config
// is loaded; until Set is called it reports MaxLevelCeiling.
type LevelCap struct {
	level atomic.Int32
}

// MaxLevel returns the configured cap, or MaxLevelCeiling if none is set yet.
func (c *LevelCap) MaxLevel() int {
	if v := c.level.Load(); v > 0 {
		return int(v)
	}
	return MaxLevelCeiling
}

// Set changes the cap. Call it during startup, before any levels are derived from exp.
func (c *LevelCap) Set(level int) error {
	if err := checkMaxLevel(level); err != nil {
		return err
	}
	c.level.Store(int32(level))
	return nil
}

// IsSet reports whether a cap has been configured.
func (c *LevelCap) IsSet() bool {
	return c.level.Load() > 0
}
