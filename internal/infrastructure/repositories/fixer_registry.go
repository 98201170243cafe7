package repositories

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// FixerFactory is a constructor function that creates a FixerRepository for
// the given executable.
type FixerFactory func(executable string) domainRepos.FixerRepository

// FixerRegistry manages all registered style-fixer implementations.
type FixerRegistry struct {
	fixers map[string]FixerFactory
}

// NewFixerRegistry creates an empty fixer registry.
func NewFixerRegistry() *FixerRegistry {
	return &FixerRegistry{
		fixers: make(map[string]FixerFactory),
	}
}

// Register adds a fixer factory under the given name (e.g. "autopep8").
func (r *FixerRegistry) Register(name string, factory FixerFactory) {
	r.fixers[name] = factory
}

// Get returns a configured fixer instance for the given name and executable.
func (r *FixerRegistry) Get(name, executable string) (domainRepos.FixerRepository, error) {
	factory, ok := r.fixers[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixer type: %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return factory(executable), nil
}

// Names returns the registered fixer names, sorted.
func (r *FixerRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.fixers))
}
