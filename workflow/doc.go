// Package workflow provides the multi-branch scenario execution engine.
//
// A Plan declares named steps and the dependency edges between them.
// BuildPhases groups the steps into sequential phases; the Engine runs
// each phase as an independent fan-out and joins it before the next
// phase starts, so a later phase always observes the fully-completed
// output of the phases it depends on (shared State + typed Ports).
//
// The first step failure in a phase cancels the phase context so
// in-flight siblings stop early; sibling results that completed before
// the failure was observed stay on the outcome. Finalized records are
// committed to a Ledger, which owns the process-lifetime history and
// the system counters under one lock.
package workflow
