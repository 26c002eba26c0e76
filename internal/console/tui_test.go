package console

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/jwebster45206/the-line/pkg/prompt"
)

func TestModel_SubmitLine(t *testing.T) {
	lines := make(chan string, 1)
	var m tea.Model = newModel(60, lines)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = m.Update(sayMsg{tone: prompt.Narration, text: "You stand in the desert."})
	m, _ = m.Update(promptMsg{text: "> "})
	for _, r := range "look" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	select {
	case got := <-lines:
		if got != "look" {
			t.Errorf("submitted line = %q, want %q", got, "look")
		}
	default:
		t.Fatal("no line submitted")
	}

	view := m.View()
	assert.Contains(t, view, "You stand in the desert.")
	assert.Contains(t, view, "look")
}

func TestModel_EnterIgnoredWithoutPrompt(t *testing.T) {
	lines := make(chan string, 1)
	var m tea.Model = newModel(60, lines)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, lines)
	assert.Equal(t, "Loading...", m.View())
}

func TestModel_FinishedQuitsOnEnter(t *testing.T) {
	var m tea.Model = newModel(60, make(chan string, 1))

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m, _ = m.Update(finishedMsg{})
	if !strings.Contains(m.View(), "Press Enter to exit.") {
		t.Errorf("View() = %q, want exit hint", m.View())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Update(Enter) returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("Update(Enter) command did not quit")
	}
}
