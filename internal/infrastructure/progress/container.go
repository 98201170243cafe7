package progress

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

// RegisterProviders registers the progress factory with the DIG container.
func RegisterProviders(container *dig.Container) error {
	return container.Provide(func() domainRepos.ProgressFactory {
		return NewTerminalFactory()
	})
}
