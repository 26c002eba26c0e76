// Package console renders the game to a terminal, either as a plain
// line-oriented stream or as a full-screen bubbletea program.
package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/jwebster45206/the-line/pkg/prompt"
)

// Styles holds one lipgloss style per tone, bound to a renderer so the
// color profile follows the actual output.
type Styles struct {
	tones     map[prompt.Tone]lipgloss.Style
	Prompt    lipgloss.Style
	User      lipgloss.Style
	Separator lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		tones: map[prompt.Tone]lipgloss.Style{
			prompt.Title:     r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // pink
			prompt.Narration: r.NewStyle().Foreground(lipgloss.Color("86")),             // green
			prompt.Notice:    r.NewStyle().Foreground(lipgloss.Color("214")),            // yellow
			prompt.Warning:   r.NewStyle().Foreground(lipgloss.Color("196")),            // red
			prompt.Status:    r.NewStyle().Foreground(lipgloss.Color("252")),
			prompt.Ending:    r.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // purple
		},
		Prompt:    r.NewStyle().Foreground(lipgloss.Color("240")), // dark grey
		User:      r.NewStyle().Foreground(lipgloss.Color("39")),  // teal
		Separator: r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Render wraps text to width and applies the tone's style line by line,
// so that wrapping never splits an escape sequence.
func (s Styles) Render(tone prompt.Tone, text string, width int) string {
	style, ok := s.tones[tone]
	if !ok {
		style = s.tones[prompt.Narration]
	}
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Rule is a horizontal separator of the given width.
func (s Styles) Rule(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Separator.Render(strings.Repeat("─", width))
}
