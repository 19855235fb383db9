package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/toolbox/internal/core/domain"
)

// theme is the colour palette for command output.
type theme struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Border    lipgloss.Color
}

func defaultTheme() theme {
	return theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Error:     lipgloss.Color("#F38BA8"), // Red
		Border:    lipgloss.Color("#45475A"), // Border gray
	}
}

// styles renders command output. Colours follow the writer's terminal
// profile, so output to pipes and buffers is plain text.
type styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Peg     lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Box     lipgloss.Style

	// boxed reports whether matrices are drawn inside a border.
	boxed bool
}

func newStyles(w io.Writer) *styles {
	t := defaultTheme()
	r := lipgloss.NewRenderer(w)

	return &styles{
		Title:   r.NewStyle().Bold(true).Foreground(t.Primary),
		Muted:   r.NewStyle().Foreground(t.Muted),
		Peg:     r.NewStyle().Bold(true).Foreground(t.Secondary),
		Success: r.NewStyle().Foreground(t.Success),
		Error:   r.NewStyle().Foreground(t.Error),
		Box: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		boxed: isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// move renders a move as "A -> C" with highlighted pegs.
func (s *styles) move(m domain.Move) string {
	return s.Peg.Render(m.From.String()) + " -> " + s.Peg.Render(m.To.String())
}

// matrix renders rows with right-aligned columns.
func (s *styles) matrix(m domain.Matrix) string {
	table := formatMatrix(m)
	if s.boxed {
		return s.Box.Render(table)
	}
	return table
}

func formatMatrix(m domain.Matrix) string {
	cells := make([][]string, len(m))
	var widths []int
	for i, row := range m {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cell := strconv.FormatFloat(v, 'g', 6, 64)
			cells[i][j] = cell
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			widths[j] = max(widths[j], len(cell))
		}
	}

	var b strings.Builder
	for i, row := range cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, cell := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(strings.Repeat(" ", widths[j]-len(cell)))
			b.WriteString(cell)
		}
	}
	return b.String()
}
