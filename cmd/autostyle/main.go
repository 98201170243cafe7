package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/autostyle/internal"
	"github.com/rios0rios0/autostyle/internal/domain/entities"
	"github.com/rios0rios0/autostyle/internal/infrastructure/logging"
)

func buildRootCommand(fixController entities.Controller, closer *io.Closer) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "autostyle [path]",
		Short: "Fix PEP 8 violations one rule per commit",
		Long: `Apply autopep8 to every tracked Python file of a git or mercurial
repository, one fix rule at a time, committing the changes of each rule
separately so the clean-up stays reviewable.

Usage modes:
  autostyle                  Fix the repository containing the current directory
  autostyle /path/to/repo    Fix a specific repository
  autostyle -s .             Apply all rules and create a single commit
  autostyle rules            List the rules in the order they are applied`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			verbose, _ := command.Flags().GetBool("verbose")
			logFile, _ := command.Flags().GetString("log-file")
			*closer = logging.Setup(logging.Options{Verbose: verbose, LogFile: logFile})
		},
		RunE: fixController.Execute,
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
	cmd.PersistentFlags().String("log-file", "",
		"Also write logs to this file (rotated)")

	fixController.AddFlags(cmd)
	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE:  controller.Execute,
		}
		controller.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	logging.Setup(logging.Options{})

	appContext, fixController := injectAppContext()

	var closer io.Closer = io.NopCloser(nil)
	cobraRoot := buildRootCommand(fixController, &closer)
	addSubcommands(cobraRoot, appContext)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cobraRoot.ExecuteContext(ctx)
	stop()
	_ = closer.Close()

	if err != nil {
		logger.Fatalf("Error executing 'autostyle': %s", err)
	}
}
