package ir

import (
	"fmt"
	"strconv"

	"fivecycle/internal/perm"
)

// IR types for width-5 permutation branching programs
// A program is a flat list of instructions; each one reads at most one
// input bit and picks one of two permutations to compose into the
// running product.

// Cond names the input bit an instruction reads, or Always for none
type Cond int

// Always marks an instruction that reads no input bit
const Always Cond = -1

// On returns the condition reading variable index
func On(index int) Cond {
	return Cond(index)
}

// Var returns the variable index and whether the condition reads one
func (c Cond) Var() (int, bool) {
	if c < 0 {
		return 0, false
	}
	return int(c), true
}

func (c Cond) String() string {
	if c < 0 {
		return "None"
	}
	return strconv.Itoa(int(c))
}

// Instruction composes IfTrue into the running product when Cond's bit is
// set and IfFalse otherwise. An instruction with IfTrue == IfFalse behaves
// the same whatever its condition reads.
type Instruction struct {
	Cond    Cond
	IfTrue  perm.Perm
	IfFalse perm.Perm
}

// NewInstruction creates an instruction
func NewInstruction(cond Cond, ifTrue, ifFalse perm.Perm) Instruction {
	return Instruction{Cond: cond, IfTrue: ifTrue, IfFalse: ifFalse}
}

// Unconditional creates an instruction applying p regardless of input
func Unconditional(p perm.Perm) Instruction {
	return Instruction{Cond: Always, IfTrue: p, IfFalse: p}
}

// IsUnconditional reports whether both branches apply the same permutation
func (i Instruction) IsUnconditional() bool {
	return i.IfTrue == i.IfFalse
}

// IsNoop reports whether the instruction never changes the running product
func (i Instruction) IsNoop() bool {
	return i.IfTrue.IsIdentity() && i.IfFalse.IsIdentity()
}

// Branch returns the permutation picked for the given bit value
func (i Instruction) Branch(bit bool) perm.Perm {
	if bit {
		return i.IfTrue
	}
	return i.IfFalse
}

func (i Instruction) String() string {
	return fmt.Sprintf("<%s, %s, %s>", i.Cond, i.IfTrue, i.IfFalse)
}

// Program is an ordered instruction list. Passes never modify a Program
// in place; each returns a fresh one.
type Program []Instruction

// Len returns the number of instructions
func (p Program) Len() int {
	return len(p)
}

// Clone returns a copy that shares no backing array with p
func (p Program) Clone() Program {
	if p == nil {
		return nil
	}
	out := make(Program, len(p))
	copy(out, p)
	return out
}

// Equal reports whether both programs hold the same instructions in order
func (p Program) Equal(other Program) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Conditions returns the distinct variable indices read by p, in first-use order
func (p Program) Conditions() []int {
	var out []int
	seen := make(map[Cond]bool)
	for _, inst := range p {
		if index, ok := inst.Cond.Var(); ok && !seen[inst.Cond] {
			seen[inst.Cond] = true
			out = append(out, index)
		}
	}
	return out
}

// IsCanonical reports whether every instruction except possibly a trailing
// unconditional one has an identity false branch
func (p Program) IsCanonical() bool {
	for i, inst := range p {
		if inst.IfFalse.IsIdentity() {
			continue
		}
		if i == len(p)-1 && inst.Cond == Always && inst.IsUnconditional() {
			continue
		}
		return false
	}
	return true
}
