package state

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/textfilter"
)

type Action string

const (
	ActionLook       Action = "look"
	ActionStatus     Action = "status"
	ActionTalk       Action = "talk"
	ActionTake       Action = "take"
	ActionUseService Action = "use_service"
	ActionUse        Action = "use"
	ActionHelp       Action = "help"
	ActionMove       Action = "move"
	ActionEncounter  Action = "encounter"
	ActionQuit       Action = "quit"
	ActionNone       Action = "" // Input not dispatched; see Command.Reply
)

// Confidence a Matcher must exceed before its answer is trusted.
const (
	CommandThreshold = 0.7
	NameThreshold    = 0.6
)

const emptyCommandReply = "Please enter a command. Type 'help' for assistance."

// Matcher maps free-form text onto command tokens ("move north", "talk",
// "take", "use", "look", "status", "help", "quit") and resolves names.
// Scores are in [0,1].
type Matcher interface {
	Classify(text string) (token string, confidence float64, err error)
	ResolveCharacter(text string) (name string, confidence float64, err error)
	ResolveItem(text string) (name string, confidence float64, err error)
}

// Command is a parsed line of input.
type Command struct {
	Action Action
	Target string
	Verb   string // actor.ActionDetain, ActionHelp or ActionIgnore
	Reply  string // set when Action is ActionNone
}

// Interpreter turns raw input into a Command. The matcher is optional.
type Interpreter struct {
	matcher Matcher
	logger  *slog.Logger
}

func NewInterpreter(matcher Matcher, logger *slog.Logger) *Interpreter {
	return &Interpreter{matcher: matcher, logger: logger}
}

// HasMatcher reports whether natural-language matching is active.
func (in *Interpreter) HasMatcher() bool {
	return in.matcher != nil
}

var (
	talkWords = textfilter.NewWordStripper("speak with", "speak to", "talk to", "talk with", "chat with", "greet", "talk", "speak", "to", "with")
	takeWords = textfilter.NewWordStripper("pick up", "take", "get", "grab", "collect", "the")
	useWords  = textfilter.NewWordStripper("drink from", "use", "drink", "eat", "consume", "from", "my", "the", "some")
)

var directions = map[string]string{
	"north": "north", "south": "south", "east": "east", "west": "west",
	"n": "north", "s": "south", "e": "east", "w": "west",
}

var encounterVerbs = map[string]string{
	"detain": actor.ActionDetain,
	"arrest": actor.ActionDetain,
	"assist": actor.ActionHelp,
	"aid":    actor.ActionHelp,
	"ignore": actor.ActionIgnore,
}

// Parse normalizes raw and recognizes it: first through the matcher, if
// any, then through the fixed grammar.
func (in *Interpreter) Parse(raw string) Command {
	text := textfilter.Normalize(raw)
	if text == "" {
		return Command{Reply: emptyCommandReply}
	}
	if cmd, ok := in.classify(text); ok {
		return cmd
	}
	return parseGrammar(strings.TrimSpace(raw), text)
}

func (in *Interpreter) classify(text string) (Command, bool) {
	if in.matcher == nil {
		return Command{}, false
	}
	token, score, err := in.matcher.Classify(text)
	if err != nil {
		in.logger.Warn("Intent matcher failed, falling back to grammar", "error", err, "input", text)
		return Command{}, false
	}
	if score <= CommandThreshold {
		return Command{}, false
	}

	switch {
	case strings.HasPrefix(token, "move "):
		return Command{Action: ActionMove, Target: strings.TrimPrefix(token, "move ")}, true
	case token == "talk":
		return in.named(ActionTalk, in.matcher.ResolveCharacter, talkWords.Strip(text))
	case token == "take":
		return in.named(ActionTake, in.matcher.ResolveItem, takeWords.Strip(text))
	case token == "use":
		return in.named(ActionUse, in.matcher.ResolveItem, useWords.Strip(text))
	case token == "look", token == "status", token == "help", token == "quit":
		return Command{Action: Action(token)}, true
	}
	return Command{}, false
}

func (in *Interpreter) named(action Action, resolve func(string) (string, float64, error), target string) (Command, bool) {
	if target == "" {
		return Command{}, false
	}
	name, score, err := resolve(target)
	if err != nil {
		in.logger.Warn("Intent matcher could not resolve name", "error", err, "action", action, "target", target)
		return Command{}, false
	}
	if score <= NameThreshold {
		return Command{}, false
	}
	return Command{Action: action, Target: name}, true
}

// parseGrammar recognizes the fixed command forms. original is echoed
// back when nothing matches.
func parseGrammar(original, text string) Command {
	verb, rest, _ := strings.Cut(text, " ")

	if dir, ok := directions[text]; ok {
		return Command{Action: ActionMove, Target: dir}
	}

	switch verb {
	case "move", "go":
		if rest == "" {
			return Command{Reply: "Move where? Try 'move north', 'move south', etc."}
		}
		if dir, ok := directions[rest]; ok {
			rest = dir
		}
		return Command{Action: ActionMove, Target: rest}
	case "talk", "speak":
		rest = strings.TrimPrefix(strings.TrimPrefix(rest, "to "), "with ")
		if rest == "" {
			return Command{Reply: "Talk to whom? Try 'talk [character name]'."}
		}
		return Command{Action: ActionTalk, Target: rest}
	case "take", "get":
		rest = takeWords.Strip(rest)
		if rest == "" {
			return Command{Reply: "Take what? Try 'take [item name]'."}
		}
		return Command{Action: ActionTake, Target: rest}
	case "use":
		if rest == "service" || strings.HasPrefix(rest, "service ") {
			service := strings.TrimSpace(strings.TrimPrefix(rest, "service"))
			if service == "" {
				return Command{Reply: "Use which service? Try 'use service [food/shelter/medical]'"}
			}
			return Command{Action: ActionUseService, Target: service}
		}
		rest = useWords.Strip(rest)
		if rest == "" {
			return Command{Reply: "Use what? Try 'use [item name]'."}
		}
		return Command{Action: ActionUse, Target: rest}
	case "detain", "arrest", "assist", "aid", "ignore":
		if rest == "" {
			return Command{Reply: fmt.Sprintf("%s whom? Try '%s [character name]'.", textfilter.Title(verb), verb)}
		}
		return Command{Action: ActionEncounter, Verb: encounterVerbs[verb], Target: rest}
	}

	switch text {
	case "look", "examine":
		return Command{Action: ActionLook}
	case "status", "inventory":
		return Command{Action: ActionStatus}
	case "help":
		return Command{Action: ActionHelp}
	case "quit", "exit":
		return Command{Action: ActionQuit}
	}

	return Command{Reply: fmt.Sprintf("I don't understand '%s'. Type 'help' for assistance.", original)}
}
