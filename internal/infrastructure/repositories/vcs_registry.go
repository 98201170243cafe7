package repositories

import (
	"context"
	"fmt"
	"strings"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// VCSRegistry manages the registered version-control implementations.
// Detection tries them in registration order.
type VCSRegistry struct {
	order []string
	vcses map[string]domainRepos.VCSRepository
}

// NewVCSRegistry creates an empty VCS registry.
func NewVCSRegistry() *VCSRegistry {
	return &VCSRegistry{
		vcses: make(map[string]domainRepos.VCSRepository),
	}
}

// Register adds a VCS under its name.
func (r *VCSRegistry) Register(vcs domainRepos.VCSRepository) {
	if _, exists := r.vcses[vcs.Name()]; !exists {
		r.order = append(r.order, vcs.Name())
	}
	r.vcses[vcs.Name()] = vcs
}

// Get returns the VCS with the given name, or nil if not registered.
func (r *VCSRegistry) Get(name string) domainRepos.VCSRepository {
	return r.vcses[name]
}

// All returns every registered VCS in registration order.
func (r *VCSRegistry) All() []domainRepos.VCSRepository {
	result := make([]domainRepos.VCSRepository, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.vcses[name])
	}
	return result
}

// Names returns the registered VCS names in registration order.
func (r *VCSRegistry) Names() []string {
	return append([]string(nil), r.order...)
}

// Detect finds the repository containing dir. An empty kind (or "auto")
// tries every registered VCS; otherwise only the named one is asked.
func (r *VCSRegistry) Detect(
	ctx context.Context,
	kind, dir string,
) (domainRepos.VCSRepository, string, error) {
	candidates := r.All()
	if kind != "" && kind != "auto" {
		vcs := r.Get(kind)
		if vcs == nil {
			return nil, "", fmt.Errorf("unknown VCS type: %q (available: %s)", kind, strings.Join(r.Names(), ", "))
		}
		candidates = []domainRepos.VCSRepository{vcs}
	}

	for _, vcs := range candidates {
		if root, ok := vcs.Detect(ctx, dir); ok {
			return vcs, root, nil
		}
	}
	return nil, "", nil
}
