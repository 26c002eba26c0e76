// Package textfilter normalizes player input and cases display text.
package textfilter

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	lowerCaser = cases.Lower(language.English)
	titleCaser = cases.Title(language.English)
)

// Normalize lowercases text, trims it and collapses inner whitespace.
func Normalize(text string) string {
	return strings.Join(strings.Fields(lowerCaser.String(text)), " ")
}

// Title title-cases every word.
func Title(text string) string {
	return titleCaser.String(strings.TrimSpace(text))
}

// TitleIfLower title-cases text typed entirely in lowercase and leaves
// deliberate casing ("McAllen", "DeShawn") alone.
func TitleIfLower(text string) string {
	text = strings.TrimSpace(text)
	if text != lowerCaser.String(text) {
		return text
	}
	return Title(text)
}

// WordStripper removes whole words (or phrases) from text.
type WordStripper struct {
	regexes []*regexp.Regexp
}

// NewWordStripper pre-compiles a word-boundary pattern per word. Longer
// phrases are listed first so "pick up" wins over "pick".
func NewWordStripper(words ...string) *WordStripper {
	ws := &WordStripper{}
	for _, w := range words {
		ws.regexes = append(ws.regexes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return ws
}

// Strip removes every listed word and re-normalizes whitespace.
func (ws *WordStripper) Strip(text string) string {
	for _, re := range ws.regexes {
		text = re.ReplaceAllString(text, " ")
	}
	return Normalize(text)
}
