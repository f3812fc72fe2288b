package perm

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fcerrors "fivecycle/internal/errors"
)

func TestNewRejectsNonBijections(t *testing.T) {
	cases := map[string][]int{
		"too short":    {0, 1, 2, 3},
		"too long":     {0, 1, 2, 3, 4, 5},
		"duplicate":    {0, 0, 1, 2, 3},
		"out of range": {0, 1, 2, 3, 5},
		"negative":     {-1, 1, 2, 3, 4},
		"empty":        {},
	}
	for name, mapping := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(mapping)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, fcerrors.ErrInvalidPermutation))
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	assert.Panics(t, func() { MustNew([]int{1, 1, 1, 1, 1}) })
}

func TestConstants(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, Identity.Mapping())
	assert.Equal(t, []int{1, 2, 3, 4, 0}, RotateR.Mapping())
	assert.True(t, Identity.IsIdentity())
	assert.False(t, RotateR.IsIdentity())
	assert.True(t, RotateR.IsFiveCycle())
	assert.False(t, Identity.IsFiveCycle())
}

func TestZeroValueIsIdentity(t *testing.T) {
	var zero Perm
	assert.Equal(t, Identity, zero)
	assert.True(t, zero.IsIdentity())
	assert.False(t, zero.IsFiveCycle())
	assert.Empty(t, zero.Cycles())
	assert.Equal(t, "id", zero.String())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, zero.Mapping())
	assert.Equal(t, RotateR, zero.Then(RotateR))
	assert.Equal(t, zero, zero.Inverse())
}

func TestComposeIsLeftToRight(t *testing.T) {
	p := MustNew([]int{1, 0, 2, 3, 4}) // (01)
	q := MustNew([]int{0, 2, 1, 3, 4}) // (12)

	// apply p then q: 0 -> 1 -> 2
	pq := Compose(p, q)
	assert.Equal(t, []int{2, 0, 1, 3, 4}, pq.Mapping())
	assert.Equal(t, "(021)", pq.String())

	// the other order gives a different permutation
	assert.NotEqual(t, pq, Compose(q, p))
	assert.Equal(t, pq, p.Then(q))
}

func TestApply(t *testing.T) {
	for x := 0; x < Size; x++ {
		y, err := RotateR.Apply(x)
		require.NoError(t, err)
		assert.Equal(t, (x+1)%Size, y)
		assert.Equal(t, y, RotateR.At(x))
	}

	for _, x := range []int{-1, 5, 100} {
		_, err := RotateR.Apply(x)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, fcerrors.ErrOutOfRange))
	}
}

func TestInverse(t *testing.T) {
	assert.Equal(t, []int{4, 0, 1, 2, 3}, RotateR.Inverse().Mapping())
	assert.Equal(t, "(04321)", RotateR.Inverse().String())
	assert.Equal(t, Identity, Identity.Inverse())
}

func TestString(t *testing.T) {
	assert.Equal(t, "id", Identity.String())
	assert.Equal(t, "(01234)", RotateR.String())
	assert.Equal(t, "(02413)", RotateR.Then(RotateR).String())
	assert.Equal(t, "(01)(234)", MustNew([]int{1, 0, 3, 4, 2}).String())
	assert.Equal(t, "(34)", MustNew([]int{0, 1, 2, 4, 3}).String())
}

func TestAllEnumeratesSymmetricGroup(t *testing.T) {
	all := All()
	require.Len(t, all, 120)

	seen := make(map[Perm]bool, len(all))
	fiveCycles := 0
	for _, p := range all {
		assert.False(t, seen[p], "duplicate permutation %v", p)
		seen[p] = true
		if p.IsFiveCycle() {
			fiveCycles++
		}
	}
	assert.Equal(t, 24, fiveCycles)
	assert.Equal(t, Identity, all[0])
}

func TestAssociativity(t *testing.T) {
	all := All()
	for _, p := range all {
		for _, q := range all {
			pq := Compose(p, q)
			for _, r := range all {
				if Compose(pq, r) != Compose(p, Compose(q, r)) {
					t.Fatalf("(%v*%v)*%v != %v*(%v*%v)", p, q, r, p, q, r)
				}
			}
		}
	}
}

func TestIdentityAndInverseLaws(t *testing.T) {
	for _, p := range All() {
		assert.Equal(t, p, Compose(p, Identity))
		assert.Equal(t, p, Compose(Identity, p))
		assert.Equal(t, Identity, Compose(p, p.Inverse()))
		assert.Equal(t, Identity, Compose(p.Inverse(), p))
	}
}
