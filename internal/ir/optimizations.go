package ir

// This file contains the program normalization passes
// Passes are applied after generation to shrink the program; none of them
// changes what the program computes for any input.
//
// Available passes
//	1.	Deduplicate (merge adjacent)
//
//	•	Instructions reading the same bit merge into one.
//	•	Unconditional instructions fold into a neighbour.
//	•	Output is kept as a stack so a run that undoes earlier work cancels
//		across several instructions, not just the immediate neighbour.
//
//	2.	CleanFalseBranch (canonical false branch)
//
//	•	Rewrites every false branch to the identity by carrying the
//		"all conditions false" product forward and conjugating the true
//		branches with it.
//	•	Leaves one trailing unconditional instruction if that product is
//		not the identity.
//
// Each pass can expose work for the other, so the pipeline repeats them
// until the program length stops changing. No bound on the number of
// rounds is known, hence the iteration guard.

import (
	"github.com/tliron/commonlog"

	fcerrors "fivecycle/internal/errors"
	"fivecycle/internal/perm"
)

// DefaultMaxIterations bounds pipeline rounds when Options leaves it unset
const DefaultMaxIterations = 64

// OptimizationPass represents a single program rewrite
type OptimizationPass interface {
	Name() string
	Apply(program Program) Program // Returns a new program; the input is left untouched
	Description() string
}

// Options selects the passes a pipeline runs and how long it may loop
type Options struct {
	Dedup         bool
	Clean         bool
	MaxIterations int
}

// DefaultOptions enables both passes with the default iteration guard
func DefaultOptions() Options {
	return Options{Dedup: true, Clean: true, MaxIterations: DefaultMaxIterations}
}

// OptimizationPipeline manages the sequence of optimization passes
type OptimizationPipeline struct {
	passes        []OptimizationPass
	maxIterations int
	iterations    int
}

// NewOptimizationPipeline creates a pipeline running the passes opts enables,
// deduplication first
func NewOptimizationPipeline(opts Options) *OptimizationPipeline {
	pipeline := &OptimizationPipeline{maxIterations: opts.MaxIterations}
	if pipeline.maxIterations <= 0 {
		pipeline.maxIterations = DefaultMaxIterations
	}

	if opts.Dedup {
		pipeline.AddPass(&Deduplicate{})
	}
	if opts.Clean {
		pipeline.AddPass(&CleanFalseBranch{})
	}

	return pipeline
}

// AddPass adds an optimization pass to the pipeline
func (p *OptimizationPipeline) AddPass(pass OptimizationPass) {
	p.passes = append(p.passes, pass)
}

// Passes returns the pass names in execution order
func (p *OptimizationPipeline) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name()
	}
	return names
}

// Iterations returns the number of rounds the last Run performed
func (p *OptimizationPipeline) Iterations() int {
	return p.iterations
}

// Run applies every pass in order, round after round, until a round leaves
// the program length unchanged. If that has not happened after the
// iteration limit, Run returns the last program with a NotConverged error.
func (p *OptimizationPipeline) Run(program Program) (Program, error) {
	log := commonlog.GetLogger("fivecycle.ir.pipeline")
	log.Debugf("running %d optimization passes on %d instructions", len(p.passes), len(program))

	p.iterations = 0
	current := program.Clone()
	for {
		if p.iterations >= p.maxIterations {
			return current, fcerrors.NotConverged(p.iterations, len(current))
		}
		p.iterations++

		before := len(current)
		for _, pass := range p.passes {
			next := pass.Apply(current)
			log.Debugf("  round %d %s: %d -> %d instructions", p.iterations, pass.Name(), len(current), len(next))
			current = next
		}
		if len(current) == before {
			return current, nil
		}
	}
}

// Deduplicate merges adjacent instructions that can share a slot
type Deduplicate struct{}

func (d *Deduplicate) Name() string {
	return "Deduplicate"
}

func (d *Deduplicate) Description() string {
	return "Merges neighbouring instructions on the same bit or with an unconditional side, dropping no-ops"
}

func (d *Deduplicate) Apply(program Program) Program {
	return MergeAdjacent(program)
}

// MergeAdjacent reduces runs of instructions that can be combined. Only the
// top of the output is ever rewritten, so a tail that inverts several
// earlier instructions collapses them one after another.
func MergeAdjacent(program Program) Program {
	result := make(Program, 0, len(program))
	for _, inst := range program {
		if len(result) == 0 {
			result = append(result, inst)
		} else {
			top := result[len(result)-1]
			switch {
			case top.Cond == inst.Cond:
				// same bit: merge both cases
				result[len(result)-1] = NewInstruction(inst.Cond,
					top.IfTrue.Then(inst.IfTrue), top.IfFalse.Then(inst.IfFalse))
			case top.IsUnconditional():
				// top applies a fixed permutation; push it into the new instruction
				result[len(result)-1] = NewInstruction(inst.Cond,
					top.IfTrue.Then(inst.IfTrue), top.IfFalse.Then(inst.IfFalse))
			case inst.IsUnconditional():
				// new instruction is fixed; append it to both branches of top
				result[len(result)-1] = NewInstruction(top.Cond,
					top.IfTrue.Then(inst.IfTrue), top.IfFalse.Then(inst.IfFalse))
			default:
				result = append(result, inst)
			}
		}

		if result[len(result)-1].IsNoop() {
			result = result[:len(result)-1]
		}
	}
	return result
}

// CleanFalseBranch rewrites a program so every false branch is the identity
type CleanFalseBranch struct{}

func (c *CleanFalseBranch) Name() string {
	return "CleanFalseBranch"
}

func (c *CleanFalseBranch) Description() string {
	return "Moves false-branch effects into the true branches, leaving one trailing residual"
}

func (c *CleanFalseBranch) Apply(program Program) Program {
	return CanonicalizeFalseBranch(program)
}

// CanonicalizeFalseBranch makes every false branch the identity.
//
// With px the product of the false branches seen so far:
//
//	<c, p1, p0> = <c, p1·p0⁻¹, id> (p0)
//	(px) <c, p1, p0> = <c, px·p1, px·p0>
//
// so
//
//	(px) <c, p1, p0> = <c, px·p1·p0⁻¹·px⁻¹, id> (px·p0)
//
// and px is carried to the end, where it becomes a trailing unconditional
// instruction if it is not the identity.
func CanonicalizeFalseBranch(program Program) Program {
	carried := perm.Identity
	result := make(Program, 0, len(program)+1)
	for _, inst := range program {
		ifTrue := carried.Then(inst.IfTrue).Then(inst.IfFalse.Inverse()).Then(carried.Inverse())
		// dropped here rather than left to MergeAdjacent, or a loop over
		// this pass alone would keep adding <None, id, id>
		if !ifTrue.IsIdentity() {
			result = append(result, NewInstruction(inst.Cond, ifTrue, perm.Identity))
		}
		carried = carried.Then(inst.IfFalse)
	}
	if !carried.IsIdentity() {
		result = append(result, Unconditional(carried))
	}
	return result
}
