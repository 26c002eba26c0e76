package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jwebster45206/the-line/pkg/prompt"
)

// Line is a line-oriented terminal: prompts and text go to the writer,
// answers come one line at a time from the reader.
type Line struct {
	in     *bufio.Reader
	out    *bufio.Writer
	width  int
	styles Styles
}

// Ensure Line implements prompt.IO
var _ prompt.IO = (*Line)(nil)

func NewLine(r io.Reader, w io.Writer, width int) *Line {
	return &Line{
		in:     bufio.NewReader(r),
		out:    bufio.NewWriter(w),
		width:  width,
		styles: NewStyles(lipgloss.NewRenderer(w)),
	}
}

// ReadLine writes the prompt and blocks for one line of input. A final
// line without a newline is still returned; after that, prompt.ErrClosed.
func (l *Line) ReadLine(p string) (string, error) {
	fmt.Fprint(l.out, l.styles.Prompt.Render(p))
	if err := l.out.Flush(); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	text, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if text == "" {
				fmt.Fprintln(l.out)
				_ = l.out.Flush()
				return "", prompt.ErrClosed
			}
			return strings.TrimRight(text, "\r\n"), nil
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func (l *Line) Say(tone prompt.Tone, text string) {
	if tone == prompt.Title || tone == prompt.Ending {
		fmt.Fprintln(l.out, l.styles.Rule(l.width))
	}
	fmt.Fprintln(l.out, l.styles.Render(tone, text, l.width))
	fmt.Fprintln(l.out)
	_ = l.out.Flush()
}
