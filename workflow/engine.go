package workflow

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Engine executes a plan's phases in dependency order.
type Engine struct {
	// MaxParallel limits concurrent branch calls per phase (0 = unlimited).
	MaxParallel int
}

// StepFilter reports whether a step should execute in this run.
// Steps that do not pass are marked skipped; their dependents still run.
type StepFilter func(stepName string, state *State) bool

// Execute runs every step of the plan in dependency order.
// On failure the returned outcome still carries every step result
// observed before the run aborted.
func (e *Engine) Execute(ctx context.Context, p *Plan, state *State) (*Outcome, error) {
	return e.execute(ctx, p, state, nil)
}

// ExecuteFiltered runs only steps that pass the filter; the rest are
// marked skipped.
func (e *Engine) ExecuteFiltered(ctx context.Context, p *Plan, state *State, filter StepFilter) (*Outcome, error) {
	return e.execute(ctx, p, state, filter)
}

func (e *Engine) execute(ctx context.Context, p *Plan, state *State, filter StepFilter) (*Outcome, error) {
	start := time.Now()

	phases, err := BuildPhases(p)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Steps: make(map[string]StepResult)}

	for _, phase := range phases {
		if err := ctx.Err(); err != nil {
			out.Duration = time.Since(start)
			return out, err
		}

		// Determine which steps to run in this phase
		var toRun []string
		for _, name := range phase {
			if filter != nil && !filter(name, state) {
				out.Steps[name] = StepResult{
					Step:   name,
					Branch: p.Steps[name].Branch(),
					Status: StepSkipped,
				}
				continue
			}
			toRun = append(toRun, name)
		}

		if len(toRun) == 0 {
			continue
		}

		// A failed phase aborts the workflow; later phases never dispatch.
		if err := e.runPhase(ctx, p, state, toRun, out); err != nil {
			out.Duration = time.Since(start)
			return out, err
		}
	}

	out.Duration = time.Since(start)
	return out, nil
}

// runPhase fans the phase's steps out concurrently and joins them.
// The first failure cancels the phase context so in-flight siblings
// stop early; sibling results that completed before the failure was
// observed are kept on the outcome.
func (e *Engine) runPhase(ctx context.Context, p *Plan, state *State, names []string, out *Outcome) error {
	phaseCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	sem := make(chan struct{}, e.concurrency(len(names)))

	for _, name := range names {
		wg.Add(1)
		go func(step Step) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-phaseCtx.Done():
				mu.Lock()
				out.Steps[step.Name()] = StepResult{
					Step:   step.Name(),
					Branch: step.Branch(),
					Status: StepCancelled,
					Err:    phaseCtx.Err(),
				}
				mu.Unlock()
				return
			}
			defer func() { <-sem }()

			sr := e.runStep(phaseCtx, step, state)

			mu.Lock()
			if sr.Err != nil {
				if firstErr == nil {
					firstErr = sr.Err
					cancel()
				} else if errors.Is(sr.Err, context.Canceled) {
					// Collateral of the first failure, not a root cause.
					sr.Status = StepCancelled
				}
			}
			out.Steps[step.Name()] = sr
			mu.Unlock()
		}(p.Steps[name])
	}

	wg.Wait()
	return firstErr
}

func (e *Engine) runStep(ctx context.Context, step Step, state *State) StepResult {
	start := time.Now()
	output, err := step.Run(ctx, state)
	duration := time.Since(start)

	if err != nil {
		return StepResult{
			Step:     step.Name(),
			Branch:   step.Branch(),
			Status:   StepFailed,
			Duration: duration,
			Err:      err,
		}
	}

	return StepResult{
		Step:     step.Name(),
		Branch:   step.Branch(),
		Status:   StepCompleted,
		Duration: duration,
		Output:   output,
	}
}

func (e *Engine) concurrency(phaseSize int) int {
	if e.MaxParallel <= 0 || e.MaxParallel > phaseSize {
		return phaseSize
	}
	return e.MaxParallel
}
