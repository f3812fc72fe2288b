// Package perm implements permutations of the five-element set {0,1,2,3,4}.
//
// Composition reads left to right: p.Then(q) applies p first and q second,
// so (p*q)(x) = q(p(x)). Every identity the compiler relies on is written
// in this order.
package perm

import (
	"fmt"
	"strings"

	fcerrors "fivecycle/internal/errors"
)

// Size is the number of elements permuted
const Size = 5

// Perm is a bijection on {0,1,2,3,4}. It stores how far each element
// moves, (image - x) mod 5, so the zero value is the identity and every
// reachable value is a bijection.
type Perm struct {
	shift [Size]uint8
}

func (p Perm) image(x int) int {
	return (x + int(p.shift[x])) % Size
}

func (p *Perm) set(x, y int) {
	p.shift[x] = uint8((y - x + Size) % Size)
}

var (
	// Identity fixes every element
	Identity = MustNew([]int{0, 1, 2, 3, 4})

	// RotateR is the 5-cycle 0→1→2→3→4→0, the root target for compiled programs
	RotateR = MustNew([]int{1, 2, 3, 4, 0})
)

// New builds a permutation from its images: mapping[x] is the image of x.
func New(mapping []int) (Perm, error) {
	if len(mapping) != Size {
		return Perm{}, fcerrors.InvalidPermutation(mapping, fmt.Sprintf("expected %d elements, got %d", Size, len(mapping)))
	}
	var p Perm
	var seen [Size]bool
	for x, y := range mapping {
		if y < 0 || y >= Size {
			return Perm{}, fcerrors.InvalidPermutation(mapping, fmt.Sprintf("image %d of %d is out of range", y, x))
		}
		if seen[y] {
			return Perm{}, fcerrors.InvalidPermutation(mapping, fmt.Sprintf("element %d appears twice", y))
		}
		seen[y] = true
		p.set(x, y)
	}
	return p, nil
}

// MustNew is like New but panics on an invalid mapping
func MustNew(mapping []int) Perm {
	p, err := New(mapping)
	if err != nil {
		panic(err)
	}
	return p
}

// Compose returns p*q: apply p, then q
func Compose(p, q Perm) Perm {
	var r Perm
	for x := 0; x < Size; x++ {
		r.set(x, q.image(p.image(x)))
	}
	return r
}

// Then is the method form of Compose
func (p Perm) Then(q Perm) Perm {
	return Compose(p, q)
}

// Inverse returns the permutation undoing p
func (p Perm) Inverse() Perm {
	var r Perm
	for x := 0; x < Size; x++ {
		r.set(p.image(x), x)
	}
	return r
}

// Apply returns the image of x
func (p Perm) Apply(x int) (int, error) {
	if x < 0 || x >= Size {
		return 0, fcerrors.OutOfRange(x)
	}
	return p.image(x), nil
}

// At returns the image of x without range checking. x must be in 0..4.
func (p Perm) At(x int) int {
	return p.image(x)
}

// Mapping returns the images of 0..4 as a fresh slice
func (p Perm) Mapping() []int {
	out := make([]int, Size)
	for x := range out {
		out[x] = p.image(x)
	}
	return out
}

// IsIdentity reports whether p fixes every element
func (p Perm) IsIdentity() bool {
	return p == Perm{}
}

// IsFiveCycle reports whether p is a single cycle of length 5
func (p Perm) IsFiveCycle() bool {
	cycles := p.Cycles()
	return len(cycles) == 1 && len(cycles[0]) == Size
}

// String renders p in disjoint-cycle notation, or "id"
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "id"
	}
	var sb strings.Builder
	for _, cycle := range cycles {
		sb.WriteByte('(')
		for _, x := range cycle {
			sb.WriteByte(byte('0' + x))
		}
		sb.WriteByte(')')
	}
	return sb.String()
}

// All returns every permutation of the five elements in lexicographic order
// of their mappings.
func All() []Perm {
	out := make([]Perm, 0, 120)
	var build func(prefix []int, used [Size]bool)
	build = func(prefix []int, used [Size]bool) {
		if len(prefix) == Size {
			out = append(out, MustNew(prefix))
			return
		}
		for y := 0; y < Size; y++ {
			if used[y] {
				continue
			}
			used[y] = true
			build(append(prefix, y), used)
			used[y] = false
		}
	}
	build(make([]int, 0, Size), [Size]bool{})
	return out
}
