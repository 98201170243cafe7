//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/autostyle/internal/domain/commands"
	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

// StubRulesCommand is a stub implementation of commands.Rules.
type StubRulesCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Listing          *commands.RulesListing
	LastSettings     *entities.Settings
}

var _ commands.Rules = (*StubRulesCommand)(nil)

func (s *StubRulesCommand) Execute(settings *entities.Settings) (*commands.RulesListing, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Listing, s.ExecuteErr
}
