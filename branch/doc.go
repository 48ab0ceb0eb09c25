// Package branch defines the contracts shared by the six business
// automation coordinators: canonical branch names, the tagged result
// variants their operations return, and the registry the system
// exposes over its status surface.
//
// Coordinators live in subpackages (marketing, sales, operations,
// customerservice, analytics, hr). Each operation is a pure
// request-to-response call that simulates work with a configurable
// delay and keeps its own mutex-guarded counters; the workflow
// aggregator stores the returned variants opaquely and never inspects
// their fields.
package branch
