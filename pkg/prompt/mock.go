package prompt

// Line is one piece of text written through a Script.
type Line struct {
	Tone Tone
	Text string
}

// Script is a headless IO that replays canned input and records output.
// ReadLine returns ErrClosed once Inputs run out.
type Script struct {
	Inputs  []string
	Prompts []string
	Output  []Line
}

// Ensure Script implements IO
var _ IO = (*Script)(nil)

func NewScript(inputs ...string) *Script {
	return &Script{Inputs: inputs}
}

func (s *Script) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Inputs) == 0 {
		return "", ErrClosed
	}
	line := s.Inputs[0]
	s.Inputs = s.Inputs[1:]
	return line, nil
}

func (s *Script) Say(tone Tone, text string) {
	s.Output = append(s.Output, Line{Tone: tone, Text: text})
}

// Said returns every text written, in order.
func (s *Script) Said() []string {
	out := make([]string, len(s.Output))
	for i, l := range s.Output {
		out[i] = l.Text
	}
	return out
}
