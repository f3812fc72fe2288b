package errors

import (
	"fmt"
)

// Sentinels for errors.Is. Matching compares codes only.
var (
	ErrInvalidPermutation  = CompilerError{Level: Error, Code: ErrorInvalidPermutation}
	ErrOutOfRange          = CompilerError{Level: Error, Code: ErrorOutOfRange}
	ErrNotASingleFiveCycle = CompilerError{Level: Error, Code: ErrorNotASingleFiveCycle}
	ErrInvalidVariable     = CompilerError{Level: Error, Code: ErrorInvalidVariable}
	ErrInvalidExpression   = CompilerError{Level: Error, Code: ErrorInvalidExpression}
	ErrNotConverged        = CompilerError{Level: Error, Code: ErrorNotConverged}
)

// CompileErrorBuilder provides a fluent interface for creating compiler errors
type CompileErrorBuilder struct {
	err CompilerError
}

// NewCompileError creates a new compile error builder
func NewCompileError(code, message string) *CompileErrorBuilder {
	return &CompileErrorBuilder{
		err: CompilerError{
			Level:   Error,
			Code:    code,
			Message: message,
		},
	}
}

// From starts a builder from an existing error so notes can be appended
func From(err CompilerError) *CompileErrorBuilder {
	err.Notes = append([]string(nil), err.Notes...)
	return &CompileErrorBuilder{err: err}
}

// WithSubject records what the error is about (a permutation, an expression)
func (b *CompileErrorBuilder) WithSubject(subject string) *CompileErrorBuilder {
	b.err.Subject = subject
	return b
}

// WithNote adds a note to the error
func (b *CompileErrorBuilder) WithNote(note string) *CompileErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *CompileErrorBuilder) WithHelp(help string) *CompileErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *CompileErrorBuilder) Build() CompilerError {
	return b.err
}

// InvalidPermutation creates an error for a mapping that is not a bijection
func InvalidPermutation(mapping []int, reason string) CompilerError {
	return NewCompileError(ErrorInvalidPermutation, fmt.Sprintf("invalid permutation %v: %s", mapping, reason)).
		WithHelp("a permutation lists the image of 0, 1, 2, 3 and 4, each exactly once").
		Build()
}

// OutOfRange creates an error for an element outside the universe
func OutOfRange(x int) CompilerError {
	return NewCompileError(ErrorOutOfRange, fmt.Sprintf("element %d is out of range", x)).
		WithNote("permutations act on {0, 1, 2, 3, 4}").
		Build()
}

// NotASingleFiveCycle creates an error for a commutator request on a bad target
func NotASingleFiveCycle(perm string) CompilerError {
	return NewCompileError(ErrorNotASingleFiveCycle, fmt.Sprintf("permutation %s is not a single 5-cycle", perm)).
		WithSubject(perm).
		WithHelp("only a permutation with one cycle of length 5 can be written as a commutator of 5-cycles").
		Build()
}

// InvalidVariable creates an error for a negative variable index
func InvalidVariable(index int) CompilerError {
	return NewCompileError(ErrorInvalidVariable, fmt.Sprintf("variable index %d is negative", index)).
		WithHelp("variables are numbered from 0").
		Build()
}

// InvalidExpression creates an error for a nil or unknown expression node
func InvalidExpression(detail string) CompilerError {
	return NewCompileError(ErrorInvalidExpression, fmt.Sprintf("invalid expression: %s", detail)).
		WithHelp("build expressions with Var, Not, And and Or").
		Build()
}

// NotConverged creates an error for a normalization loop that hit its guard
func NotConverged(iterations, length int) CompilerError {
	return NewCompileError(ErrorNotConverged,
		fmt.Sprintf("normalization did not converge after %d iterations (program length %d)", iterations, length)).
		WithNote("the returned program is still equivalent to the input, only not fully reduced").
		WithHelp("raise MaxIterations or run the passes individually").
		Build()
}
