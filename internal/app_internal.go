package internal

import "github.com/rios0rios0/autostyle/internal/domain/entities"

// AppInternal holds everything the CLI entry point needs from the container.
type AppInternal struct {
	controllers []entities.Controller
}

func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
