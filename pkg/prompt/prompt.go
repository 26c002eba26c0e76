// Package prompt defines the interaction boundary: the only place the
// game reads player input or writes text.
package prompt

import (
	"errors"
	"strings"
)

// Tone tells the boundary how a piece of text should be presented.
type Tone int

const (
	Narration Tone = iota
	Title
	Notice
	Warning
	Status
	Ending
)

// ErrClosed is returned by ReadLine once input is exhausted.
var ErrClosed = errors.New("input closed")

// IO reads lines from and writes text to the player. ReadLine blocks.
type IO interface {
	ReadLine(prompt string) (string, error)
	Say(tone Tone, text string)
}

// Confirm asks a yes/no question. Anything starting with "y" is yes.
func Confirm(io IO, question string) (bool, error) {
	answer, err := io.ReadLine(question)
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y"), nil
}
