package store

import (
	"fmt"
	"slices"
	"strings"
)

// IDAllocator picks the ID for a new record given the IDs already present.
type IDAllocator interface {
	Next(existing []int) int
}

// LengthPlusOne assigns len(collection)+1.
//
// This matches how existing data files were numbered, but it is unsafe:
// after a delete the next ID can duplicate one still in use
// (create 1,2,3; delete 2; create -> 3 again). Use MaxPlusOne to avoid that.
type LengthPlusOne struct{}

func (LengthPlusOne) Next(existing []int) int { return len(existing) + 1 }

// MaxPlusOne assigns the highest ID seen plus one. IDs never collide.
type MaxPlusOne struct{}

func (MaxPlusOne) Next(existing []int) int {
	if len(existing) == 0 {
		return 1
	}
	return slices.Max(existing) + 1
}

// ID strategy names accepted by ParseIDStrategy.
const (
	IDStrategyLength = "length"
	IDStrategyMax    = "max"
)

// ParseIDStrategy maps a config value to an allocator. Empty means "length".
func ParseIDStrategy(name string) (IDAllocator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", IDStrategyLength:
		return LengthPlusOne{}, nil
	case IDStrategyMax:
		return MaxPlusOne{}, nil
	default:
		return nil, fmt.Errorf("unsupported id strategy %q (want %q or %q)", name, IDStrategyLength, IDStrategyMax)
	}
}
