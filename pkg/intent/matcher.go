// Package intent maps free-form player phrasing onto the fixed command
// vocabulary. It scores string similarity between the input and a table
// of known phrasings; no model or network call is involved.
package intent

import (
	"errors"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/jwebster45206/the-line/pkg/textfilter"
)

var (
	ErrNoPhrases    = errors.New("matcher has no command phrases")
	ErrNoVocabulary = errors.New("matcher has no names registered")
)

// Phrase maps one way of saying something onto a canonical command token.
// When Require is set, the input must contain that word for the phrase
// to score at all.
type Phrase struct {
	Text    string
	Token   string
	Require string
}

// Name matches are boosted to this score when every input word appears
// in the candidate name.
const subsetScore = 0.9

// PhraseMatcher classifies commands and resolves character and item
// names. It is not safe for concurrent mutation.
type PhraseMatcher struct {
	phrases    []Phrase
	characters []string
	items      []string
	metric     strutil.StringMetric
}

// NewPhraseMatcher returns a matcher loaded with DefaultPhrases.
func NewPhraseMatcher() *PhraseMatcher {
	return NewPhraseMatcherWith(DefaultPhrases())
}

// NewPhraseMatcherWith returns a matcher using only the given phrases.
// Scores are the Sørensen–Dice coefficient over character bigrams.
func NewPhraseMatcherWith(phrases []Phrase) *PhraseMatcher {
	return &PhraseMatcher{phrases: phrases, metric: metrics.NewSorensenDice()}
}

// DefaultPhrases is the built-in command table.
func DefaultPhrases() []Phrase {
	var out []Phrase
	for _, dir := range []string{"north", "south", "east", "west"} {
		token := "move " + dir
		for _, verb := range []string{"head", "walk", "travel", "go", "move", "go to the", "walk towards the", "head towards the"} {
			out = append(out, Phrase{Text: verb + " " + dir, Token: token, Require: dir})
		}
		out = append(out, Phrase{Text: dir, Token: token, Require: dir})
	}
	add := func(token string, texts ...string) {
		for _, t := range texts {
			out = append(out, Phrase{Text: t, Token: token})
		}
	}
	add("status", "check my health", "check status", "how am i doing", "show inventory", "what am i carrying", "check my supplies")
	add("look", "look around", "examine the area", "what is here", "describe surroundings", "where am i")
	add("talk", "speak with", "speak to", "talk to", "talk with", "chat with", "greet")
	add("take", "grab", "pick up", "take the", "collect")
	add("use", "drink from", "drink", "eat", "use the", "consume")
	add("help", "help me", "what can i do", "show commands")
	add("quit", "quit game", "exit game", "leave the game", "i want to stop")
	return out
}

// AddCharacters registers character names for ResolveCharacter.
func (m *PhraseMatcher) AddCharacters(names ...string) {
	m.characters = appendUnique(m.characters, names)
}

// AddItems registers item names for ResolveItem.
func (m *PhraseMatcher) AddItems(names ...string) {
	m.items = appendUnique(m.items, names)
}

// Classify returns the command token that best matches text and its
// confidence in [0,1]. A phrase contained whole in text scores 1, and the
// longest contained phrase wins. A best partial score shared by two
// different tokens is ambiguous and reported with confidence 0.
func (m *PhraseMatcher) Classify(text string) (string, float64, error) {
	if len(m.phrases) == 0 {
		return "", 0, ErrNoPhrases
	}
	text = textfilter.Normalize(text)
	words := wordSet(text)

	var (
		best      string
		bestScore float64
		bestLen   int
		ambiguous bool
	)
	for _, p := range m.phrases {
		if p.Require != "" {
			if _, ok := words[p.Require]; !ok {
				continue
			}
		}
		contained := containsPhrase(text, p.Text)
		score := 1.0
		if !contained {
			score = strutil.Similarity(text, p.Text, m.metric)
		}

		switch {
		case score > bestScore:
			best, bestScore, bestLen, ambiguous = p.Token, score, len(p.Text), false
		case score == bestScore && contained && len(p.Text) > bestLen:
			best, bestLen = p.Token, len(p.Text)
		case score == bestScore && !contained && score > 0 && p.Token != best:
			ambiguous = true
		}
	}
	if ambiguous {
		return best, 0, nil
	}
	return best, bestScore, nil
}

// ResolveCharacter returns the registered character name closest to text.
func (m *PhraseMatcher) ResolveCharacter(text string) (string, float64, error) {
	return m.resolve(m.characters, text)
}

// ResolveItem returns the registered item name closest to text.
func (m *PhraseMatcher) ResolveItem(text string) (string, float64, error) {
	return m.resolve(m.items, text)
}

func (m *PhraseMatcher) resolve(names []string, text string) (string, float64, error) {
	if len(names) == 0 {
		return "", 0, ErrNoVocabulary
	}
	text = textfilter.Normalize(text)
	words := wordSet(text)

	var (
		best      string
		bestScore float64
	)
	for _, name := range names {
		normalized := textfilter.Normalize(name)
		nameWords := wordSet(normalized)
		score := strutil.Similarity(text, normalized, m.metric)
		if score < subsetScore && len(words) > 0 && subset(words, nameWords) {
			score = subsetScore
		}
		if score > bestScore {
			best, bestScore = name, score
		}
	}
	return best, bestScore, nil
}

func subset(a, b map[string]struct{}) bool {
	for w := range a {
		if _, ok := b[w]; !ok {
			return false
		}
	}
	return true
}

func wordSet(text string) map[string]struct{} {
	fields := strings.Fields(text)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func containsPhrase(text, phrase string) bool {
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}

func appendUnique(dst, names []string) []string {
	for _, n := range names {
		if strings.TrimSpace(n) != "" && !slices.Contains(dst, n) {
			dst = append(dst, n)
		}
	}
	return dst
}
