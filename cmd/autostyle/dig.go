package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/autostyle/internal"
	"github.com/rios0rios0/autostyle/internal/infrastructure/controllers"
)

func injectAppContext() (*internal.AppInternal, *controllers.FixController) {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var (
		appInternal   *internal.AppInternal
		fixController *controllers.FixController
	)
	if err := container.Invoke(func(ai *internal.AppInternal, fc *controllers.FixController) {
		appInternal = ai
		fixController = fc
	}); err != nil {
		panic(err)
	}

	return appInternal, fixController
}
