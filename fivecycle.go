package fivecycle

import (
	"errors"

	"fivecycle/internal/ast"
	fcerrors "fivecycle/internal/errors"
	"fivecycle/internal/ir"
	"fivecycle/internal/perm"
)

type (
	// Perm is a permutation of {0,1,2,3,4}
	Perm = perm.Perm
	// Expr is a boolean expression tree
	Expr = ast.Expr
	// Cond is the input bit an instruction reads, or Always
	Cond = ir.Cond
	// Instruction picks IfTrue or IfFalse depending on Cond
	Instruction = ir.Instruction
	// Program is an ordered list of instructions
	Program = ir.Program
	// Options selects normalization passes and the iteration guard
	Options = ir.Options
	// CompilerError is the error type returned by every operation
	CompilerError = fcerrors.CompilerError
)

// Always marks an instruction that reads no input bit
const Always = ir.Always

var (
	Identity = perm.Identity
	RotateR  = perm.RotateR
)

var (
	ErrInvalidPermutation  = fcerrors.ErrInvalidPermutation
	ErrOutOfRange          = fcerrors.ErrOutOfRange
	ErrNotASingleFiveCycle = fcerrors.ErrNotASingleFiveCycle
	ErrInvalidVariable     = fcerrors.ErrInvalidVariable
	ErrInvalidExpression   = fcerrors.ErrInvalidExpression
	ErrNotConverged        = fcerrors.ErrNotConverged
)

// NewPerm builds a permutation from the images of 0..4
func NewPerm(mapping []int) (Perm, error) { return perm.New(mapping) }

// FromCycle builds the permutation cycling through the given elements
func FromCycle(cycle []int) (Perm, error) { return perm.FromCycle(cycle) }

// Compose returns p*q: apply p, then q
func Compose(p, q Perm) Perm { return perm.Compose(p, q) }

// Commutator returns 5-cycles a, b with a*b*a⁻¹*b⁻¹ == x
func Commutator(x Perm) (Perm, Perm, error) { return perm.Commutator(x) }

// Var returns the variable with the given index
func Var(index int) Expr { return ast.Var(index) }

// Not returns ~e
func Not(e Expr) Expr { return ast.Not(e) }

// And returns l & r
func And(l, r Expr) Expr { return ast.And(l, r) }

// Or returns l | r
func Or(l, r Expr) Expr { return ast.Or(l, r) }

// Generate compiles e so it folds to target when true and identity when false
func Generate(e Expr, target Perm) (Program, error) { return ir.Generate(e, target) }

// Compile compiles e towards RotateR
func Compile(e Expr) (Program, error) { return ir.Compile(e) }

// MergeAdjacent merges neighbouring instructions and drops no-ops
func MergeAdjacent(p Program) Program { return ir.MergeAdjacent(p) }

// CanonicalizeFalseBranch rewrites p so every false branch is the identity
func CanonicalizeFalseBranch(p Program) Program { return ir.CanonicalizeFalseBranch(p) }

// DefaultOptions enables both passes with the default iteration guard
func DefaultOptions() Options { return ir.DefaultOptions() }

// Normalize runs the enabled passes until the program length stops changing
func Normalize(p Program, opts Options) (Program, error) { return ir.Normalize(p, opts) }

// Print returns a plain listing of p
func Print(p Program) string { return ir.Print(p) }

// Explain renders err in the compiler's diagnostic format, naming the
// expression being compiled when e is not nil. Errors that are not
// CompilerErrors are returned as their plain message; a nil err renders
// as the empty string.
func Explain(err error, e Expr) string {
	if err == nil {
		return ""
	}
	var cerr CompilerError
	if !errors.As(err, &cerr) {
		return err.Error() + "\n"
	}
	name := ""
	if !ast.IsNil(e) {
		name = e.String()
	}
	return fcerrors.NewErrorReporter(name).FormatError(cerr)
}
