package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	domainRepos "github.com/rios0rios0/autostyle/internal/domain/repositories"
)

const (
	minBarWidth = 10
	maxBarWidth = 60
	labelWidth  = 6
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97706"))
	filledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#3F3F46"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// TerminalFactory draws a one-line progress bar per pass when the output is
// a terminal, and nothing otherwise.
type TerminalFactory struct {
	out   io.Writer
	width int // 0 disables the bar
}

var _ domainRepos.ProgressFactory = (*TerminalFactory)(nil)

// NewTerminalFactory creates a factory drawing on stderr, sized to the
// terminal. Without a terminal the bar is skipped.
func NewTerminalFactory() *TerminalFactory {
	fd := int(os.Stderr.Fd())
	if !term.IsTerminal(fd) {
		return &TerminalFactory{out: os.Stderr}
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return &TerminalFactory{out: os.Stderr}
	}
	return &TerminalFactory{out: os.Stderr, width: width}
}

// NewWriterFactory creates a factory drawing on out with a fixed width.
func NewWriterFactory(out io.Writer, width int) *TerminalFactory {
	return &TerminalFactory{out: out, width: width}
}

// Start returns a bar for a pass over total files.
func (f *TerminalFactory) Start(label string, total int) domainRepos.ProgressReporter {
	if f.width <= 0 || total == 0 {
		return Noop{}
	}

	// label, counter and spacing take roughly 20 columns
	barWidth := min(max(f.width-20-len(label), minBarWidth), maxBarWidth) //nolint:mnd // decorations
	return &bar{out: f.out, label: label, total: total, width: barWidth}
}

type bar struct {
	mu      sync.Mutex
	out     io.Writer
	label   string
	total   int
	done    int
	changed int
	width   int
}

func (b *bar) Advance(_ string, changed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.done++
	if changed {
		b.changed++
	}
	fmt.Fprint(b.out, "\r"+b.render())
}

func (b *bar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()

	fmt.Fprint(b.out, "\r"+strings.Repeat(" ", lipgloss.Width(b.render()))+"\r")
}

func (b *bar) render() string {
	filled := b.width * b.done / b.total
	return fmt.Sprintf("%s %s%s %s",
		labelStyle.Render(fmt.Sprintf("%-*s", labelWidth, b.label)),
		filledStyle.Render(strings.Repeat("█", filled)),
		emptyStyle.Render(strings.Repeat("░", b.width-filled)),
		counterStyle.Render(fmt.Sprintf("%d/%d (%d fixed)", b.done, b.total, b.changed)),
	)
}

// Noop discards all progress.
type Noop struct{}

func (Noop) Advance(string, bool) {}

func (Noop) Done() {}
