package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewFixCommand); err != nil {
		return err
	}
	if err := container.Provide(NewRulesCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *FixCommand) Fix {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *RulesCommand) Rules {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
