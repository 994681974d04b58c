package golden

import (
	"fmt"
	"math/rand"

	"github.com/conneroisu/steroscopic-hardware/stereo"
)

// defaultSeed is used when no WithSeed/WithRand option is given.
const defaultSeed int64 = 1

// Options describes the shape of generated patch pairs.
type Options struct {
	WindowSize   int // SAD window side; odd, ≤ Width
	Width        int // patch width; patch height equals WindowSize
	MaxDisparity int // largest disparity searched by the oracle
	Cases        int // vectors per Batch
}

// DefaultOptions returns the hardware test-bench configuration:
// 15×64 patches, 64 disparities, 4 cases.
func DefaultOptions() Options {
	return Options{
		WindowSize:   stereo.DefaultBlockSize,
		Width:        64,
		MaxDisparity: stereo.DefaultMaxDisparity,
		Cases:        4,
	}
}

// Validate reports the first unusable field.
func (o Options) Validate() error {
	switch {
	case o.WindowSize < 1 || o.WindowSize%2 == 0:
		return fmt.Errorf("window %d must be odd and positive: %w", o.WindowSize, ErrInvalidOptions)
	case o.Width < o.WindowSize:
		return fmt.Errorf("width %d below window %d: %w", o.Width, o.WindowSize, ErrInvalidOptions)
	case o.MaxDisparity < 0:
		return fmt.Errorf("max disparity %d: %w", o.MaxDisparity, ErrInvalidOptions)
	case o.Cases < 1:
		return fmt.Errorf("cases %d: %w", o.Cases, ErrInvalidOptions)
	}

	return nil
}

// Option configures randomness and matching for Generator and SamplePatches.
type Option func(*config)

type config struct {
	rng   *rand.Rand
	match []stereo.Option
}

// WithRand uses r for every draw. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("golden: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed draws from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithMatchOptions forwards options to stereo.MatchIntegral in SamplePatches.
func WithMatchOptions(opts ...stereo.Option) Option {
	return func(c *config) { c.match = append(c.match, opts...) }
}

func gatherConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return c
}
