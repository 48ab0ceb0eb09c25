package workflow

import (
	"context"

	"github.com/Garrettc123/ai-business-automation-tree/branch"
	apperrors "github.com/Garrettc123/ai-business-automation-tree/errors"
)

// Step is the execution unit in a workflow plan.
type Step interface {
	// Name identifies the step within its plan.
	Name() string
	// Branch returns the canonical name of the branch the step calls.
	Branch() string
	// Run invokes the branch operation, reading its input from and
	// writing its result to the shared state.
	Run(ctx context.Context, state *State) (branch.Result, error)
}

// StepConfig configures a coordinator-backed step.
type StepConfig[I any, O branch.Result] struct {
	// Name is the unique step identifier in the plan.
	Name string
	// Branch is the canonical branch name the step executes against.
	Branch string
	// Call invokes the branch operation.
	Call func(ctx context.Context, input I) (O, error)
	// Extract reads the operation input from state.
	Extract func(state *State) (I, error)
	// Output is the port where the result is written.
	Output Port[O]
}

// NewStep bridges a typed branch operation into a workflow Step.
// Call and Extract failures surface as structured branch failures.
func NewStep[I any, O branch.Result](cfg StepConfig[I, O]) Step {
	return &opStep[I, O]{cfg: cfg}
}

type opStep[I any, O branch.Result] struct {
	cfg StepConfig[I, O]
}

func (s *opStep[I, O]) Name() string   { return s.cfg.Name }
func (s *opStep[I, O]) Branch() string { return s.cfg.Branch }

func (s *opStep[I, O]) Run(ctx context.Context, state *State) (branch.Result, error) {
	input, err := s.cfg.Extract(state)
	if err != nil {
		return nil, apperrors.BranchFailure(s.cfg.Branch, s.cfg.Name, err)
	}

	output, err := s.cfg.Call(ctx, input)
	if err != nil {
		return nil, apperrors.BranchFailure(s.cfg.Branch, s.cfg.Name, err)
	}

	Write(state, s.cfg.Output, output)
	return output, nil
}

// NewSourceStep bridges a branch operation that takes no request, such
// as a quarterly review, into a workflow Step.
func NewSourceStep[O branch.Result](name, branchName string, call func(ctx context.Context) (O, error), output Port[O]) Step {
	return NewStep(StepConfig[struct{}, O]{
		Name:   name,
		Branch: branchName,
		Call: func(ctx context.Context, _ struct{}) (O, error) {
			return call(ctx)
		},
		Extract: func(*State) (struct{}, error) { return struct{}{}, nil },
		Output:  output,
	})
}
