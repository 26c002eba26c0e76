// Package narrative supplies the journey's prose: flavor events,
// dialogue, epilogues and the closing summary. It owns no game state;
// callers pass in the session Stats and the characters involved.
package narrative

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/chance"
	"github.com/jwebster45206/the-line/pkg/scenario"
)

// Ending reasons understood by Epilogue. Anything else gets the general
// epilogue.
const (
	ReasonDeath    = "death"
	ReasonDetained = "detained"
	ReasonSuccess  = "success"
	ReasonTimeout  = "timeout"
)

// Story draws flavor text from the built-in pools.
type Story struct {
	src     chance.Source
	printer *message.Printer
}

// NewStory returns a Story drawing from src.
func NewStory(src chance.Source) *Story {
	return &Story{
		src:     src,
		printer: message.NewPrinter(language.English),
	}
}

// Title returns the title banner.
func (s *Story) Title() string {
	return titleBanner
}

// Welcome returns the text shown under the title.
func (s *Story) Welcome() string {
	return welcomeText
}

// Intro returns the opening passage for a journey starting at start.
func (s *Story) Intro(start string) string {
	return introText + "\n\nYour journey begins in " + start + "."
}

// TriggerRandomEvent picks a flavor event for the player's role and logs
// it to stats. It returns false when the role has no pool.
func (s *Story) TriggerRandomEvent(stats *Stats, kind actor.Kind) (string, bool) {
	event, ok := chance.Pick(s.src, randomEvents[kind])
	if !ok {
		return "", false
	}
	stats.LogEvent(event)
	return "Suddenly:\n" + event, true
}

// TriggerTraumaEvent picks a traumatic memory.
func (s *Story) TriggerTraumaEvent() (string, bool) {
	event, ok := chance.Pick(s.src, traumaEvents)
	if !ok {
		return "", false
	}
	return "A haunting moment sears itself into your memory:\n" + event, true
}

// LocationLine returns one thematic line for the location's kind.
func (s *Story) LocationLine(l *scenario.Location) string {
	pool, ok := locationLines[l.Kind]
	if !ok {
		pool = locationLines[scenario.LocationBase]
	}
	line, _ := chance.Pick(s.src, pool)
	return strings.ReplaceAll(line, "{name}", l.Name)
}

// Dialogue returns a line for speaker to say to player.
func (s *Story) Dialogue(speaker, player *actor.Character) string {
	pool, ok := dialogue[pairing{speaker: speaker.Kind, player: player.Kind}]
	if !ok {
		pool = genericDialogue
	}

	var lines []string
	for _, tmpl := range pool {
		if line, ok := fillDialogue(tmpl, speaker); ok {
			lines = append(lines, line)
		}
	}
	line, ok := chance.Pick(s.src, lines)
	if !ok {
		line, _ = chance.Pick(s.src, genericDialogue)
	}
	return line
}

func fillDialogue(tmpl string, speaker *actor.Character) (string, bool) {
	if strings.Contains(tmpl, "{origin}") {
		if speaker.Migrant == nil || speaker.Migrant.Origin == "" {
			return "", false
		}
		tmpl = strings.ReplaceAll(tmpl, "{origin}", speaker.Migrant.Origin)
	}
	if strings.Contains(tmpl, "{family}") {
		if speaker.Migrant == nil || len(speaker.Migrant.FamilyTies) == 0 {
			return "", false
		}
		names := make([]string, len(speaker.Migrant.FamilyTies))
		for i, tie := range speaker.Migrant.FamilyTies {
			names[i] = tie.Name
		}
		tmpl = strings.ReplaceAll(tmpl, "{family}", strings.Join(names, ", "))
	}
	if strings.Contains(tmpl, "{years}") {
		if speaker.Patrol == nil {
			return "", false
		}
		tmpl = strings.ReplaceAll(tmpl, "{years}", strconv.Itoa(speaker.Patrol.YearsOfService))
	}
	return tmpl, true
}

// Epilogue renders the closing passage for an ending reason. The success
// epilogue tells a migrant's story, so agents get the general one.
func (s *Story) Epilogue(reason string, player *actor.Character) string {
	if reason == ReasonSuccess && !player.IsMigrant() {
		reason = ""
	}
	text, ok := epilogues[reason]
	if !ok {
		text = epilogues["general"]
	}

	var b strings.Builder
	b.WriteString("EPILOGUE\n========\n\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	b.WriteString(closingText)
	return b.String()
}

// Summary renders the journey statistics and a closing reflection.
func (s *Story) Summary(stats *Stats, player *actor.Character) string {
	p := s.printer
	var b strings.Builder

	b.WriteString("JOURNEY SUMMARY\n===============\n\n")
	p.Fprintf(&b, "Distance Traveled: %d miles\n", stats.DistanceTraveled)
	p.Fprintf(&b, "Lives Impacted: %d individuals\n", stats.LivesImpacted)
	p.Fprintf(&b, "Moral Choices Made: %d decisions\n", stats.MoralChoicesMade)
	p.Fprintf(&b, "Traumatic Events Experienced: %d incidents\n\n", stats.TraumaExperienced)

	if len(stats.KeyEvents) > 0 {
		b.WriteString("Memorable Moments:\n")
		for _, e := range stats.RecentEvents(5) {
			b.WriteString("- " + e + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(reflection(player))

	quote, _ := chance.Pick(s.src, quotes)
	b.WriteString("\n\nReflection:\n")
	b.WriteString(quote)
	return b.String()
}

func reflection(player *actor.Character) string {
	switch {
	case player.Migrant != nil:
		line := "You began your journey in " + player.Migrant.Origin + ", carrying dreams of a better life.\n"
		switch hope := player.Migrant.Hope; {
		case hope > 70:
			return line + "Despite the hardships, your spirit remains unbroken."
		case hope > 30:
			return line + "The journey has taken its toll, but you persist."
		default:
			return line + "The weight of the journey has left deep scars."
		}
	case player.Patrol != nil:
		line := "After " + strconv.Itoa(player.Patrol.YearsOfService) + " years of service, each day brings new challenges.\n"
		switch compass := player.Patrol.MoralCompass; {
		case compass > 70:
			return line + "You've maintained your humanity while upholding the law."
		case compass > 30:
			return line + "The job has forced you to make difficult compromises."
		default:
			return line + "The border has changed you in ways you never expected."
		}
	default:
		return "Your journey along the line has ended."
	}
}
