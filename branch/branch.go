package branch

import (
	"context"
	"time"
)

// Canonical branch names. Workflow records, metrics and the HTTP
// surface all key results by these.
const (
	Marketing       = "marketing"
	Sales           = "sales"
	Operations      = "operations"
	CustomerService = "customer_service"
	Analytics       = "analytics"
	HR              = "hr"
)

// Names returns the six branch names in registration order.
func Names() []string {
	return []string{Marketing, Sales, Operations, CustomerService, Analytics, HR}
}

// Result is the contract every branch operation report satisfies.
// The aggregator stores results under the producing branch's name and
// never reads variant fields.
type Result interface {
	// Branch returns the canonical name of the branch that produced the result.
	Branch() string
	// Operation returns the name of the operation that produced the result.
	Operation() string
}

// Simulate stands in for the model call or I/O a production branch
// operation would perform. It blocks for d or until ctx is canceled,
// so an in-flight operation stops early when its workflow aborts.
func Simulate(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
