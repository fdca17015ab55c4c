package bot

import (
	"fmt"

	"github.com/iamasit07/4-in-a-row/simulator/internal/domain"
)

// Strategy names accepted by New.
const (
	NameRandom     = "random"
	NameWinOrBlock = "winnow_or_random"
	NameMinimax    = "minimax"
	NameThreat     = "threat"
)

const (
	ErrUnknownStrategy domain.Error = "unknown strategy"
	ErrInvalidDepth    domain.Error = "invalid search depth"
)

// Options configure the strategies built by New. A zero Depth means
// DefaultMinimaxDepth; a nil Rand means a source seeded with 1.
type Options struct {
	Depth int
	Rand  Random
}

// New builds the strategy registered under name.
func New(name string, opts Options) (Strategy, error) {
	rnd := opts.Rand
	if rnd == nil {
		rnd = NewRandom(1)
	}

	switch name {
	case NameRandom:
		return NewRandomStrategy(rnd), nil
	case NameWinOrBlock:
		return NewWinOrBlockStrategy(rnd), nil
	case NameMinimax:
		depth := opts.Depth
		if depth == 0 {
			depth = DefaultMinimaxDepth
		}
		return NewMinimaxStrategy(depth, rnd)
	case NameThreat:
		return NewThreatStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Names lists every registered strategy.
func Names() []string {
	return []string{NameRandom, NameWinOrBlock, NameMinimax, NameThreat}
}

// DisplayName returns a human-readable label for a strategy name.
func DisplayName(name string) string {
	switch name {
	case NameRandom:
		return "Random Strategy"
	case NameWinOrBlock:
		return "Winnow or Random Strategy"
	case NameMinimax:
		return "Minimax Strategy"
	case NameThreat:
		return "Threat Strategy"
	default:
		return name
	}
}
