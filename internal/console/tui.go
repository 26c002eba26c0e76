package console

import (
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jwebster45206/the-line/pkg/prompt"
)

const PlaceHolderText = "Type a command..."

type sayMsg struct {
	tone prompt.Tone
	text string
}

type promptMsg struct{ text string }

type finishedMsg struct{}

// TUI runs the game inside a full-screen bubbletea program. The game loop
// runs on its own goroutine and talks to the program through messages;
// ReadLine blocks until the player submits a line.
type TUI struct {
	program *tea.Program
	lines   chan string
	done    chan struct{}
	once    sync.Once
}

// Ensure TUI implements prompt.IO
var _ prompt.IO = (*TUI)(nil)

func NewTUI(width int) *TUI {
	t := &TUI{
		lines: make(chan string, 1),
		done:  make(chan struct{}),
	}
	t.program = tea.NewProgram(newModel(width, t.lines), tea.WithAltScreen())
	return t
}

// Run starts the program and the game together. It returns once the player
// leaves the screen, with the game's error if it had one.
func (t *TUI) Run(game func(io prompt.IO) error) error {
	errc := make(chan error, 1)
	go func() {
		err := game(t)
		t.program.Send(finishedMsg{})
		errc <- err
	}()

	_, runErr := t.program.Run()
	t.once.Do(func() { close(t.done) })
	gameErr := <-errc
	if runErr != nil {
		return runErr
	}
	return gameErr
}

func (t *TUI) ReadLine(p string) (string, error) {
	t.program.Send(promptMsg{text: p})
	select {
	case line := <-t.lines:
		return line, nil
	case <-t.done:
		return "", prompt.ErrClosed
	}
}

func (t *TUI) Say(tone prompt.Tone, text string) {
	t.program.Send(sayMsg{tone: tone, text: text})
}

type model struct {
	viewport   viewport.Model
	input      textinput.Model
	styles     Styles
	transcript []string
	lines      chan<- string
	wrap       int
	pending    string
	waiting    bool
	finished   bool
	ready      bool
}

func newModel(wrap int, lines chan<- string) model {
	ti := textinput.New()
	ti.Placeholder = PlaceHolderText
	ti.CharLimit = 200
	ti.Focus()

	styles := NewStyles(lipgloss.DefaultRenderer())
	ti.Prompt = styles.Prompt.Render(":: ")

	return model{
		viewport: viewport.New(wrap, 20),
		input:    ti,
		styles:   styles,
		lines:    lines,
		wrap:     wrap,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 3)
		m.input.Width = max(msg.Width-6, 10)
		m.ready = true
		m.refresh()

	case sayMsg:
		if msg.tone == prompt.Title || msg.tone == prompt.Ending {
			m.transcript = append(m.transcript, m.styles.Rule(m.textWidth()))
		}
		m.transcript = append(m.transcript, m.styles.Render(msg.tone, msg.text, m.textWidth()))
		m.refresh()

	case promptMsg:
		m.pending = strings.TrimSpace(msg.text)
		m.waiting = true

	case finishedMsg:
		m.finished = true
		m.waiting = false
		m.pending = "Press Enter to exit."

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.finished {
				return m, tea.Quit
			}
			if !m.waiting {
				return m, nil
			}
			line := m.input.Value()
			m.input.SetValue("")
			m.transcript = append(m.transcript, m.styles.Prompt.Render(m.pending)+" "+m.styles.User.Render(line))
			m.waiting = false
			m.pending = ""
			m.refresh()
			m.lines <- line
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if !m.ready {
		return "Loading..."
	}
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Prompt.Render(m.pending))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m *model) refresh() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
	m.viewport.GotoBottom()
}

func (m model) textWidth() int {
	if m.viewport.Width > 4 && m.viewport.Width-4 < m.wrap {
		return m.viewport.Width - 4
	}
	return m.wrap
}
