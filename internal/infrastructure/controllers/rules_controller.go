package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/autostyle/internal/domain/commands"
	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

// RulesController handles the "rules" subcommand.
type RulesController struct {
	command commands.Rules
}

// NewRulesController creates a new RulesController.
func NewRulesController(command commands.Rules) *RulesController {
	return &RulesController{command: command}
}

// GetBind returns the Cobra command metadata for the rules controller.
func (it *RulesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "rules",
		Short: "List the fix rules in the order they are applied",
		Long: `List the autopep8 fix rules a run applies, in order, after the
rules.only and rules.exclude settings are taken into account. Rules that
are never applied automatically are listed separately.`,
	}
}

// AddFlags is a no-op: the rules command only uses the global flags.
func (it *RulesController) AddFlags(_ *cobra.Command) {}

// Execute prints the effective catalog.
func (it *RulesController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	listing, err := it.command.Execute(settings)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), RenderRules(listing))
	return nil
}
