package entities

import "errors"

var (
	// ErrRepositoryNotFound is returned when no supported version-control
	// repository contains the requested path.
	ErrRepositoryNotFound = errors.New("no repository found")

	// ErrFixerNotFound is returned when the style-fix executable cannot be run.
	ErrFixerNotFound = errors.New("fixer executable not found")

	// ErrUnknownRule is returned when settings reference a rule that is not
	// part of the catalog.
	ErrUnknownRule = errors.New("unknown fix rule")
)
