package commands

import (
	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

// Rules is the interface for the rules command.
type Rules interface {
	Execute(settings *entities.Settings) (*RulesListing, error)
}

// RulesListing is the effective catalog of a run plus the rules that are
// never applied.
type RulesListing struct {
	Active   []entities.FixRule
	Skipped  []entities.FixRule // filtered out by the settings
	Excluded []entities.FixRule // never run automatically
}

// RulesCommand resolves the catalog a fix run would use.
type RulesCommand struct{}

// NewRulesCommand creates a new RulesCommand.
func NewRulesCommand() *RulesCommand {
	return &RulesCommand{}
}

// Execute returns the active catalog for the given settings.
func (it *RulesCommand) Execute(settings *entities.Settings) (*RulesListing, error) {
	active, err := settings.Catalog()
	if err != nil {
		return nil, err
	}

	enabled := make(map[string]bool, len(active))
	for _, rule := range active {
		enabled[rule.Code] = true
	}

	var skipped []entities.FixRule
	for _, rule := range entities.DefaultCatalog() {
		if !enabled[rule.Code] {
			skipped = append(skipped, rule)
		}
	}

	return &RulesListing{
		Active:   active,
		Skipped:  skipped,
		Excluded: entities.ExcludedRules(),
	}, nil
}
