package btree

import "fmt"

const (
	// DefaultDegree is the branching factor used when Config.Degree is zero.
	DefaultDegree = 12
	// MinDegree is the smallest supported branching factor.
	MinDegree = 2
	// MaxDegree is the largest supported branching factor.
	MaxDegree = 1 << 12
)

// Config configures the shape of a tree-backed list.
//
// The degree is fixed for the lifetime of a list.
type Config struct {
	// Degree is the maximum number of items per leaf and the maximum number of
	// children per inner node. Zero selects DefaultDegree.
	Degree int
}

func (cfg Config) normalized() Config {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < MinDegree || cfg.Degree > MaxDegree {
		return fmt.Errorf("%w: degree %d not in [%d…%d]", ErrInvalidConfig,
			cfg.Degree, MinDegree, MaxDegree)
	}
	return nil
}

// minFill is the lower occupancy bound ⌈degree/2⌉ for every node but the last
// one of its level.
func (cfg Config) minFill() int {
	return (cfg.Degree + 1) / 2
}
