package bozorth

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/bozorth3/angle"
)

// Snapshot is a coherent, value-type read of Config, good for the lifetime
// of a single MatchScore call.
type Snapshot struct {
	MaxMinutiaDistance        int32
	MaxMinutiaDistanceSquared int32
	MinPairsToBuildCluster    int
	MaxClusters               int
	MaxGroups                 int
	ScoreThreshold            uint32
	AngleTolerance            angle.Tolerance
	Factor                    float32
	StrictMode                bool
}

// Config holds process-wide matcher thresholds as atomics, mirroring the
// legacy matcher's global AtomicI32/AtomicU32/AtomicBool configuration: any
// goroutine may read or adjust it at any time without additional locking.
type Config struct {
	maxMinutiaDistance        atomic.Int32
	maxMinutiaDistanceSquared atomic.Int32
	minPairsToBuildCluster    atomic.Int32
	maxClusters               atomic.Int32
	maxGroups                 atomic.Int32
	scoreThreshold            atomic.Uint32
	angleLowerBound           atomic.Int32
	factorBits                atomic.Uint32
	strictMode                atomic.Bool
}

// NewConfig returns a Config preloaded with the legacy matcher's defaults.
func NewConfig() *Config {
	c := &Config{}
	c.maxMinutiaDistance.Store(125)
	c.maxMinutiaDistanceSquared.Store(75 * 75)
	c.minPairsToBuildCluster.Store(3)
	c.maxClusters.Store(2000)
	c.maxGroups.Store(10)
	c.scoreThreshold.Store(8)
	c.angleLowerBound.Store(11)
	c.factorBits.Store(math.Float32bits(0.05))
	c.strictMode.Store(true)
	return c
}

func (c *Config) SetMaxMinutiaDistance(n int32)     { c.maxMinutiaDistance.Store(n) }
func (c *Config) SetMinPairsToBuildCluster(n int32) { c.minPairsToBuildCluster.Store(n) }
func (c *Config) SetMaxClusters(n int32)            { c.maxClusters.Store(n) }
func (c *Config) SetMaxGroups(n int32)              { c.maxGroups.Store(n) }
func (c *Config) SetScoreThreshold(n uint32)        { c.scoreThreshold.Store(n) }
func (c *Config) SetFactor(f float32)               { c.factorBits.Store(math.Float32bits(f)) }
func (c *Config) SetStrictMode(strict bool)         { c.strictMode.Store(strict) }

// SetAngleLowerBound sets the lower tolerance bound, deriving the upper
// bound as 360-n the way the legacy matcher's set_angle_diff does.
func (c *Config) SetAngleLowerBound(n int32) { c.angleLowerBound.Store(n) }

// Snapshot takes a coherent value-type read of every field.
func (c *Config) Snapshot() Snapshot {
	return Snapshot{
		MaxMinutiaDistance:        c.maxMinutiaDistance.Load(),
		MaxMinutiaDistanceSquared: c.maxMinutiaDistanceSquared.Load(),
		MinPairsToBuildCluster:    int(c.minPairsToBuildCluster.Load()),
		MaxClusters:               int(c.maxClusters.Load()),
		MaxGroups:                 int(c.maxGroups.Load()),
		ScoreThreshold:            c.scoreThreshold.Load(),
		AngleTolerance:            angle.NewTolerance(c.angleLowerBound.Load()),
		Factor:                    math.Float32frombits(c.factorBits.Load()),
		StrictMode:                c.strictMode.Load(),
	}
}
