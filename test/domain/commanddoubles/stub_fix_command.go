//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/autostyle/internal/domain/commands"
	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

// StubFixCommand is a stub implementation of commands.Fix.
type StubFixCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.FixReport
	LastSettings     *entities.Settings
	LastOpts         commands.FixOptions
}

var _ commands.Fix = (*StubFixCommand)(nil)

func (s *StubFixCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts commands.FixOptions,
) (*entities.FixReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
