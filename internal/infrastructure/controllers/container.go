package controllers

import (
	"github.com/rios0rios0/autostyle/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewFixController); err != nil {
		return err
	}
	if err := container.Provide(NewRulesController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for the
// AppInternal. The fix controller is also mounted on the root command.
func NewControllers(
	fixController *FixController,
	rulesController *RulesController,
) *[]entities.Controller {
	return &[]entities.Controller{
		fixController,
		rulesController,
	}
}
