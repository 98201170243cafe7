package controllers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/autostyle/internal/domain/commands"
	"github.com/rios0rios0/autostyle/internal/domain/entities"
)

var (
	accent     = lipgloss.Color("#D97706")
	dim        = lipgloss.Color("#6B7280")
	success    = lipgloss.Color("#22C55E")
	danger     = lipgloss.Color("#EF4444")
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	codeStyle  = lipgloss.NewStyle().Bold(true).Width(6)
	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	passStyle  = lipgloss.NewStyle().Foreground(success)
	failStyle  = lipgloss.NewStyle().Foreground(danger)
)

// RenderReport formats the summary of a fix run.
func RenderReport(report *entities.FixReport) string {
	var b strings.Builder

	title := "autostyle"
	if report.DryRun {
		title += " (dry run)"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s repository at %s", report.VCS, report.Root)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d files, %d rules", report.Files, report.Rules)))
	b.WriteString("\n")

	if len(report.Commits) == 0 {
		b.WriteString(dimStyle.Render("nothing to commit"))
		b.WriteString("\n")
	}
	for _, commit := range report.Commits {
		b.WriteString(passStyle.Render("✓ "))
		b.WriteString(commit.Message)
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d files)", commit.Files)))
		b.WriteString("\n")
	}
	for _, message := range report.FailedCommits {
		b.WriteString(failStyle.Render("✗ "))
		b.WriteString(message)
		b.WriteString("\n")
	}
	if report.FailedFiles > 0 {
		b.WriteString(failStyle.Render(fmt.Sprintf("%d file fixes failed, see the log", report.FailedFiles)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderRules formats the catalog listing of the rules command.
func RenderRules(listing *commands.RulesListing) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Applied rules (%d)", len(listing.Active))))
	b.WriteString("\n")
	for i, rule := range listing.Active {
		fmt.Fprintf(&b, "%s %s %s\n",
			dimStyle.Render(fmt.Sprintf("%3d.", i+1)), codeStyle.Render(rule.Code), rule.Description)
	}

	writeRuleSection(&b, "Disabled by settings", listing.Skipped)
	writeRuleSection(&b, "Never applied automatically", listing.Excluded)
	return b.String()
}

func writeRuleSection(b *strings.Builder, title string, rules []entities.FixRule) {
	if len(rules) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d)", title, len(rules))))
	b.WriteString("\n")
	for _, rule := range rules {
		fmt.Fprintf(b, "     %s %s\n", codeStyle.Render(rule.Code), dimStyle.Render(rule.Description))
	}
}
