package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/autostyle/internal/domain/commands"
	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

// FixController handles the root command: fix a repository and commit the
// result rule by rule.
type FixController struct {
	command commands.Fix
}

// NewFixController creates a new FixController.
func NewFixController(command commands.Fix) *FixController {
	return &FixController{command: command}
}

// GetBind returns the Cobra command metadata for the fix controller.
func (it *FixController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "fix [path]",
		Short: "Fix style violations and commit them rule by rule",
		Long: `Apply every autopep8 fix rule to the tracked Python files of a
git or mercurial repository. The changes of each rule are committed
separately, so the clean-up reads as a reviewable history.

With --single-commit all rules are applied at once and committed together.`,
	}
}

// AddFlags adds the fix-specific flags to the given Cobra command.
func (it *FixController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("single-commit", "s", false, "Apply all rules at once and create a single commit")
	cmd.Flags().IntP("jobs", "j", 0, "Number of files fixed in parallel (0 = half of the CPUs)")
	cmd.Flags().Int("max-line-length", entities.DefaultMaxLineLength, "Maximum line length passed to autopep8")
	cmd.Flags().Int("aggressive", 0, "autopep8 aggressiveness level")
	cmd.Flags().String("vcs", "", "Force the VCS type (git, hg)")
	cmd.Flags().Bool("dry-run", false, "Show the fixes as diffs without changing files or committing")
	cmd.Flags().Bool("strict", false, "Abort on file-type detection or commit failures")
	cmd.Flags().Bool("allow-dirty", false, "Run even when the working tree has uncommitted changes")
}

// Execute runs the fix/commit loop on the given path (default ".").
func (it *FixController) Execute(cmd *cobra.Command, args []string) error {
	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	settings, err := loadSettings(cmd, repoDir)
	if err != nil {
		return err
	}
	if overrideErr := applyFixFlags(cmd, settings); overrideErr != nil {
		return overrideErr
	}

	singleCommit, _ := cmd.Flags().GetBool("single-commit")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	allowDirty, _ := cmd.Flags().GetBool("allow-dirty")

	report, err := it.command.Execute(cmd.Context(), settings, commands.FixOptions{
		RepoDir:      repoDir,
		SingleCommit: singleCommit,
		DryRun:       dryRun,
		AllowDirty:   allowDirty,
	})
	if report != nil {
		fmt.Fprintln(cmd.OutOrStdout(), RenderReport(report))
	}
	return err
}

// applyFixFlags lets explicitly set flags win over the settings file.
func applyFixFlags(cmd *cobra.Command, settings *entities.Settings) error {
	flags := cmd.Flags()
	if flags.Changed("jobs") {
		settings.Fixer.Jobs, _ = flags.GetInt("jobs")
	}
	if flags.Changed("max-line-length") {
		settings.Fixer.MaxLineLength, _ = flags.GetInt("max-line-length")
	}
	if flags.Changed("aggressive") {
		settings.Fixer.Aggressive, _ = flags.GetInt("aggressive")
	}
	if flags.Changed("vcs") {
		settings.VCS, _ = flags.GetString("vcs")
	}
	if flags.Changed("strict") {
		settings.Strict, _ = flags.GetBool("strict")
	}
	return settings.Validate()
}
