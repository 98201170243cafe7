package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
// Entities are plain values: settings are loaded per invocation by the
// controllers, from --config or the repository being fixed, so nothing is
// provided here.
func RegisterProviders(_ *dig.Container) error {
	return nil
}
