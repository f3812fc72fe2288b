package perm

import (
	fcerrors "fivecycle/internal/errors"
)

// Commutator finds 5-cycles a and b with a*b*a⁻¹*b⁻¹ == x.
//
// Barrington's base case (12345)(13542)(54321)(24531) = (13254), relabeled
// to 0-indexing, reads (02143)(01342)(34120)(24310) = (01234). Every 5-cycle
// is conjugate to (01234), so relabeling x's cycle [c0..c4] into that
// identity gives the pair directly.
func Commutator(x Perm) (a, b Perm, err error) {
	cycles := x.Cycles()
	if len(cycles) != 1 || len(cycles[0]) != Size {
		return Perm{}, Perm{}, fcerrors.NotASingleFiveCycle(x.String())
	}
	c := cycles[0]
	a = MustFromCycle([]int{c[0], c[2], c[1], c[4], c[3]})
	b = MustFromCycle([]int{c[0], c[1], c[3], c[4], c[2]})
	return a, b, nil
}

// CommutatorOf returns a*b*a⁻¹*b⁻¹
func CommutatorOf(a, b Perm) Perm {
	return a.Then(b).Then(a.Inverse()).Then(b.Inverse())
}
