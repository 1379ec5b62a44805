package report

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores reporters by name, providing discovery and duplication
// safeguards. Implementations can embed or wrap this for dependency injection.
type Registry struct {
	mu        sync.RWMutex
	reporters map[string]Reporter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		reporters: make(map[string]Reporter),
	}
}

// Register adds a reporter by its Name(). Duplicate names return an error.
func (r *Registry) Register(reporter Reporter) error {
	if reporter == nil {
		return fmt.Errorf("report: reporter is required")
	}
	name := reporter.Name()
	if name == "" {
		return fmt.Errorf("report: reporter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reporters[name]; exists {
		return fmt.Errorf("report: reporter %q already registered", name)
	}

	r.reporters[name] = reporter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(reporter Reporter) {
	if err := r.Register(reporter); err != nil {
		panic(err)
	}
}

// Get retrieves a reporter by name.
func (r *Registry) Get(name string) (Reporter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reporter, ok := r.reporters[name]
	if !ok {
		return nil, fmt.Errorf("report: reporter %q not found", name)
	}
	return reporter, nil
}

// Names lists the registered reporters in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.reporters))
	for name := range r.reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
