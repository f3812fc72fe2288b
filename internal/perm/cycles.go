package perm

import (
	"fmt"

	fcerrors "fivecycle/internal/errors"
)

// Cycles writes p as a product of disjoint cycles. Fixed points are
// omitted; cycles are ordered by their smallest element and each one
// starts at it.
func (p Perm) Cycles() [][]int {
	var seen [Size]bool
	var cycles [][]int
	for start := 0; start < Size; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		cycle := []int{start}
		for x := p.image(start); x != start; x = p.image(x) {
			seen[x] = true
			cycle = append(cycle, x)
		}
		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}
	return cycles
}

// FromCycle builds the permutation sending each element of cycle to the
// next one, wrapping around, and fixing everything else.
func FromCycle(cycle []int) (Perm, error) {
	mapping := Identity.Mapping()
	var seen [Size]bool
	for i, x := range cycle {
		if x < 0 || x >= Size {
			return Perm{}, fcerrors.InvalidPermutation(cycle, fmt.Sprintf("cycle element %d is out of range", x))
		}
		if seen[x] {
			return Perm{}, fcerrors.InvalidPermutation(cycle, fmt.Sprintf("cycle repeats element %d", x))
		}
		seen[x] = true
		mapping[x] = cycle[(i+1)%len(cycle)]
	}
	return New(mapping)
}

// MustFromCycle is like FromCycle but panics on an invalid cycle
func MustFromCycle(cycle []int) Perm {
	p, err := FromCycle(cycle)
	if err != nil {
		panic(err)
	}
	return p
}

// FromCycles composes the given cycles left to right. For a disjoint
// decomposition the order does not matter, so FromCycles(p.Cycles()) == p.
func FromCycles(cycles [][]int) (Perm, error) {
	result := Identity
	for _, cycle := range cycles {
		c, err := FromCycle(cycle)
		if err != nil {
			return Perm{}, err
		}
		result = result.Then(c)
	}
	return result, nil
}
