// Package automation is the root aggregator of the platform. A System
// owns the six branch coordinators, the workflow engine, the branch
// registry, the history ledger and the lifecycle event publisher, and
// executes the named cross-branch scenarios against them.
//
// Each scenario is a fixed plan: named branch calls plus dependency
// edges. The engine derives the fan-out phases from the edges, so the
// customer lifecycle runs as a five-stage chain while the product
// launch hits all six branches in one parallel wave. Every run
// produces exactly one workflow record committed to the ledger.
//
// Systems are self-contained: construct as many as needed and they
// share nothing, which keeps concurrent tests isolated.
package automation
