package repositories

import (
	"maps"
	"slices"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// DetectorRegistry manages the file-type detectors selectable in settings.
type DetectorRegistry struct {
	detectors map[string]domainRepos.FileTypeDetector
}

// NewDetectorRegistry creates an empty detector registry.
func NewDetectorRegistry() *DetectorRegistry {
	return &DetectorRegistry{
		detectors: make(map[string]domainRepos.FileTypeDetector),
	}
}

// Register adds a detector under the given name.
func (r *DetectorRegistry) Register(name string, d domainRepos.FileTypeDetector) {
	r.detectors[name] = d
}

// Get returns the detector with the given name, or nil if not registered.
func (r *DetectorRegistry) Get(name string) domainRepos.FileTypeDetector {
	return r.detectors[name]
}

// Names returns the registered detector names, sorted.
func (r *DetectorRegistry) Names() []string {
	return slices.Sorted(maps.Keys(r.detectors))
}
