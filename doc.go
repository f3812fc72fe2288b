/*
Package fivecycle compiles boolean expressions into width-5 permutation
branching programs, following Barrington's theorem.

A program is a list of instructions. Each instruction reads one input bit
(or none) and picks one of two permutations of {0,1,2,3,4}; composing the
picked permutations left to right, starting from the identity, gives
RotateR when the expression is true and the identity when it is false.

# Usage

	a, b := fivecycle.Var(0), fivecycle.Var(1)
	program, err := fivecycle.Compile(fivecycle.Or(a, fivecycle.Not(b)))
	if err != nil {
		log.Fatal(err)
	}
	program, err = fivecycle.Normalize(program, fivecycle.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(fivecycle.Print(program))

# Normalization

Compiled programs are correct but long. MergeAdjacent folds neighbouring
instructions that can share a slot, and CanonicalizeFalseBranch rewrites the
program so every false branch is the identity. Normalize repeats both until
the program length stops changing, with an iteration guard.

# Errors

Errors are CompilerError values carrying a code. Use errors.Is against
ErrInvalidPermutation, ErrOutOfRange, ErrNotASingleFiveCycle,
ErrInvalidVariable, ErrInvalidExpression or ErrNotConverged.
*/
package fivecycle
