package narrative

// StatKind names a journey counter.
type StatKind string

const (
	StatDistance     StatKind = "distance_traveled"
	StatLives        StatKind = "lives_impacted"
	StatMoralChoices StatKind = "moral_choices_made"
	StatTrauma       StatKind = "trauma_experienced"
)

// Stats is the per-session journey record. It is created at session
// start and handed by pointer to whoever updates it.
type Stats struct {
	DistanceTraveled  int      `json:"distance_traveled"`
	LivesImpacted     int      `json:"lives_impacted"`
	MoralChoicesMade  int      `json:"moral_choices_made"`
	TraumaExperienced int      `json:"trauma_experienced"`
	KeyEvents         []string `json:"key_events"`
}

// NewStats returns zeroed stats.
func NewStats() *Stats {
	return &Stats{}
}

// Update adds value to the named counter. Unknown kinds are ignored.
func (s *Stats) Update(kind StatKind, value int) {
	switch kind {
	case StatDistance:
		s.DistanceTraveled += value
	case StatLives:
		s.LivesImpacted += value
	case StatMoralChoices:
		s.MoralChoicesMade += value
	case StatTrauma:
		s.TraumaExperienced += value
	}
}

// LogEvent appends to the key events unless text repeats the most
// recent entry. It reports whether the entry was added.
func (s *Stats) LogEvent(text string) bool {
	if n := len(s.KeyEvents); n > 0 && s.KeyEvents[n-1] == text {
		return false
	}
	s.KeyEvents = append(s.KeyEvents, text)
	return true
}

// RecentEvents returns up to the last n key events.
func (s *Stats) RecentEvents(n int) []string {
	if len(s.KeyEvents) <= n {
		return s.KeyEvents
	}
	return s.KeyEvents[len(s.KeyEvents)-n:]
}
