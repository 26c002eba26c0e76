package scenario

import (
	"errors"
	"testing"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/chance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_CanOccur(t *testing.T) {
	desert := NewDesert("d", "Desert", "", 9, 8)
	border := NewBorder("b", "Border", "", 8, 7)

	anywhere := &Event{Kind: EventBase}
	desertOnly := &Event{Kind: EventBase, LocationKinds: []LocationKind{LocationDesert}}

	assert.True(t, anywhere.CanOccur(desert))
	assert.True(t, anywhere.CanOccur(border))
	assert.True(t, desertOnly.CanOccur(desert))
	assert.False(t, desertOnly.CanOccur(border))
}

func TestEvent_Encounter(t *testing.T) {
	tests := []struct {
		name          string
		encounterType string
		player        func() *actor.Character
		wantText      string
		check         func(t *testing.T, c *actor.Character)
	}{
		{
			name:          "patrol lowers migrant hope",
			encounterType: EncounterPatrol,
			player:        func() *actor.Character { return actor.NewMigrant("Rosa", "", "", "", 100) },
			wantText:      "A vehicle approaches.\nRosa's hope diminishes.",
			check:         func(t *testing.T, c *actor.Character) { assert.Equal(t, 80, c.Hope()) },
		},
		{
			name:          "patrol leaves agent untouched",
			encounterType: EncounterPatrol,
			player:        func() *actor.Character { return actor.NewBorderPatrol("Cruz", "", 3, 100) },
			wantText:      "A vehicle approaches.",
			check:         func(t *testing.T, c *actor.Character) { assert.Equal(t, 0, c.Stress()) },
		},
		{
			name:          "migrant group stresses agent",
			encounterType: EncounterMigrant,
			player:        func() *actor.Character { return actor.NewBorderPatrol("Cruz", "", 3, 100) },
			wantText:      "A vehicle approaches.\nCruz's stress increases.",
			check:         func(t *testing.T, c *actor.Character) { assert.Equal(t, 10, c.Stress()) },
		},
		{
			name:          "locals lift hope capped at 100",
			encounterType: EncounterLocal,
			player:        func() *actor.Character { return actor.NewMigrant("Rosa", "", "", "", 100) },
			wantText:      "A vehicle approaches.\nRosa feels more hopeful.",
			check:         func(t *testing.T, c *actor.Character) { assert.Equal(t, 100, c.Hope()) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Event{Name: "e", Description: "A vehicle approaches.", Kind: EventEncounter, EncounterType: tt.encounterType}
			c := tt.player()
			out := e.Execute(c, nil, chance.New())
			assert.Equal(t, tt.wantText, out.Text)
			assert.Equal(t, CategoryEncounter, out.Category)
			assert.False(t, out.Pending())
			tt.check(t, c)
		})
	}
}

func TestEvent_Resource(t *testing.T) {
	t.Run("water clamps", func(t *testing.T) {
		c := actor.NewMigrant("Rosa", "", "", "", 100)
		c.Supplies.Water = 90
		e := &Event{Description: "Cache.", Kind: EventResource, Resource: ResourceWater, Amount: 30}
		out := e.Execute(c, nil, chance.New())
		assert.Equal(t, 100, c.Water())
		assert.Equal(t, "Cache.\nRosa found water.", out.Text)
		assert.Equal(t, CategoryAmbient, out.Category)
	})

	t.Run("water skipped without attribute", func(t *testing.T) {
		c := actor.NewGeneric("Manuel", "", 90)
		e := &Event{Description: "Sun.", Kind: EventResource, Resource: ResourceWater, Amount: -15}
		out := e.Execute(c, nil, chance.New())
		assert.Equal(t, "Sun.", out.Text)
	})

	t.Run("health always applies", func(t *testing.T) {
		c := actor.NewGeneric("Manuel", "", 90)
		e := &Event{Description: "Fall.", Kind: EventResource, Resource: ResourceHealth, Amount: -95}
		out := e.Execute(c, nil, chance.New())
		assert.Equal(t, 0, c.Health)
		assert.Equal(t, "Fall.\nManuel's health worsened.", out.Text)
	})

	t.Run("item found from pool", func(t *testing.T) {
		c := actor.NewMigrant("Rosa", "", "", "", 100)
		e := &Event{Description: "Backpack.", Kind: EventResource, Resource: ResourceItem, Amount: 1}
		out := e.Execute(c, []string{"Map", "Radio"}, &chance.Scripted{Ints: []int{1}})
		assert.Equal(t, []string{"Radio"}, c.Inventory)
		assert.Equal(t, "Backpack.\nRosa found Radio.", out.Text)
	})

	t.Run("item lost from inventory", func(t *testing.T) {
		c := actor.NewMigrant("Rosa", "", "", "", 100)
		c.AddItem("Map")
		c.AddItem("Compass")
		e := &Event{Description: "Thief.", Kind: EventResource, Resource: ResourceItem, Amount: -1}
		out := e.Execute(c, nil, &chance.Scripted{Ints: []int{0}})
		assert.Equal(t, []string{"Compass"}, c.Inventory)
		assert.Equal(t, "Thief.\nRosa lost Map.", out.Text)
	})

	t.Run("item loss with empty inventory is a no-op", func(t *testing.T) {
		c := actor.NewMigrant("Rosa", "", "", "", 100)
		e := &Event{Description: "Thief.", Kind: EventResource, Resource: ResourceItem, Amount: -1}
		out := e.Execute(c, nil, chance.New())
		assert.Empty(t, c.Inventory)
		assert.Equal(t, "Thief.", out.Text)
	})
}

func borderWall() *Event {
	return &Event{
		Name:        "Border Wall Encounter",
		Description: "You see a gap.",
		Kind:        EventMoral,
		Choices:     []string{"Slip through.", "Wait.", "Diversion."},
		Consequences: []Consequence{
			{Description: "You dash.", HopeImpact: 10, Flags: map[string]bool{"crossed_border": true}},
			{Description: "You wait.", HopeImpact: -5},
			{Description: "You throw a rock.", HopeImpact: 5, MoralImpact: 7, Flags: map[string]bool{"created_diversion": true, "noisy": false}},
		},
	}
}

func TestEvent_MoralRequestsChoice(t *testing.T) {
	e := borderWall()
	c := actor.NewMigrant("Rosa", "", "", "", 100)

	out := e.Execute(c, nil, chance.New())
	require.True(t, out.Pending())
	assert.Equal(t, []string{"Slip through.", "Wait.", "Diversion."}, out.Choice.Choices)
	assert.Equal(t, CategoryMoralChoice, out.Category)
	assert.Equal(t, 100, c.Hope(), "nothing applies before a choice is made")
}

func TestEvent_Resolve(t *testing.T) {
	e := borderWall()

	migrant := actor.NewMigrant("Rosa", "", "", "", 100)
	migrant.Migrant.Hope = 50
	out, err := e.Resolve(migrant, 3)
	require.NoError(t, err)
	assert.Equal(t, "You chose: Diversion.\nYou throw a rock.", out.Text)
	assert.Equal(t, 55, migrant.Hope())
	assert.Equal(t, map[string]bool{"created_diversion": true, "noisy": false}, migrant.StoryFlags)

	agent := actor.NewBorderPatrol("Cruz", "", 3, 100)
	_, err = e.Resolve(agent, 3)
	require.NoError(t, err)
	assert.Equal(t, 57, agent.MoralCompass())

	_, err = e.Resolve(migrant, 0)
	assert.True(t, errors.Is(err, ErrInvalidChoice))
	_, err = e.Resolve(migrant, 4)
	assert.True(t, errors.Is(err, ErrInvalidChoice))

	_, err = (&Event{Kind: EventBase}).Resolve(migrant, 1)
	assert.ErrorIs(t, err, ErrNotMoral)
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr error
	}{
		{"1", 1, nil},
		{"2", 2, nil},
		{" 3 ", 3, nil},
		{"0", 0, ErrInvalidChoice},
		{"4", 0, ErrInvalidChoice},
		{"-1", 0, ErrInvalidChoice},
		{"abc", 0, ErrNotANumber},
		{"", 0, ErrNotANumber},
	}
	for _, tt := range tests {
		got, err := ParseChoice(tt.input, 3)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("ParseChoice(%q) error = %v, want %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseChoice(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
