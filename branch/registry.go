package branch

import (
	"sync"
	"time"
)

// Status of a registered branch.
type Status string

const (
	// StatusRegistered means the branch is known but not yet started.
	StatusRegistered Status = "registered"
	// StatusActive means the branch has been started and accepts operations.
	StatusActive Status = "active"
)

// Info is the externally visible state of one registered branch.
type Info struct {
	Status        Status     `json:"status"`
	Type          string     `json:"type"`
	LastExecution *time.Time `json:"last_execution"`
}

type entry struct {
	status        Status
	branchType    string
	lastExecution time.Time
}

// Registry tracks branch registration, activation and last execution
// times. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*entry
}

// NewRegistry creates an empty branch registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Register adds a branch under its canonical name with status
// registered. Re-registering a name resets its entry.
func (r *Registry) Register(name, branchType string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = &entry{status: StatusRegistered, branchType: branchType}
}

// Activate marks a branch active. Unknown names are ignored.
func (r *Registry) Activate(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[name]; ok {
		e.status = StatusActive
	}
}

// ActivateAll marks every registered branch active.
func (r *Registry) ActivateAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		e.status = StatusActive
	}
}

// Touch stamps the branch's last execution time. Unknown names are
// ignored.
func (r *Registry) Touch(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[name]; ok {
		e.lastExecution = time.Now()
	}
}

// Names returns the registered branch names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Count returns the number of registered branches.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Get returns the info for one branch.
func (r *Registry) Get(name string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return Info{}, false
	}
	return e.info(), true
}

// Snapshot returns a copy of every branch's info keyed by name.
func (r *Registry) Snapshot() map[string]Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Info, len(r.entries))
	for name, e := range r.entries {
		out[name] = e.info()
	}
	return out
}

func (e *entry) info() Info {
	info := Info{Status: e.status, Type: e.branchType}
	if !e.lastExecution.IsZero() {
		t := e.lastExecution
		info.LastExecution = &t
	}
	return info
}
