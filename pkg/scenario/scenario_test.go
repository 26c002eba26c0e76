package scenario

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWorld(t *testing.T) {
	w, err := DefaultWorld()
	require.NoError(t, err)

	assert.Equal(t, "nogales_mx", w.Start)
	assert.Equal(t, "tucson", w.SuccessLocation)
	assert.Equal(t, "detention_center", w.DetentionLocation)
	assert.Equal(t, 30, w.TurnLimit)
	assert.Len(t, w.Locations(), 6)
	assert.Len(t, w.Items, 11)
	assert.Len(t, w.Events, 9)

	wall, err := w.Location("border_fence")
	require.NoError(t, err)
	south, ok := wall.Exit("south")
	require.True(t, ok)
	assert.Equal(t, "nogales_mx", south.ID)

	var names []string
	for _, e := range wall.Events() {
		names = append(names, e.Name)
	}
	assert.ElementsMatch(t, []string{"Border Wall Encounter", "Border Patrol", "Abandoned Child"}, names)

	desert, err := w.Location("sonoran_desert")
	require.NoError(t, err)
	chars := desert.Characters()
	require.Len(t, chars, 1)
	elena := chars[0]
	assert.Equal(t, "Elena", elena.Name)
	assert.Equal(t, 60, elena.Water())
	assert.Equal(t, 50, elena.Food())
	assert.Equal(t, 80, elena.Health)
	require.Len(t, elena.Migrant.FamilyTies, 1)
	assert.Equal(t, "Sofia", elena.Migrant.FamilyTies[0].Name)

	_, err = w.Location("atlantis")
	assert.ErrorIs(t, err, ErrUnknownLocation)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(`{"name": "x", "dragons": true}`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	s := &Scenario{
		Name:              "broken",
		OpeningLocation:   "start",
		SuccessLocation:   "nowhere",
		DetentionLocation: "start",
		Locations: []LocationSpec{
			{ID: "start", Name: "Start", Kind: LocationSettlement, Exits: []ExitSpec{{Direction: "up", To: "attic"}}},
			{ID: "Bad-ID", Name: "Bad", Kind: "swamp", DangerLevel: 11, Services: []Service{"spa"}},
		},
		Events: []Event{
			{Name: "Choice", Kind: EventMoral, Choices: []string{"a", "b"}, Consequences: []Consequence{{Description: "a"}}},
			{Name: "Rain", Kind: EventResource, Resource: "gold", Amount: 0},
		},
	}

	err := s.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		`location ID "Bad-ID" must be lowercase snake_case`,
		`unknown kind "swamp"`,
		"danger_level 11 not in 0-10",
		`unknown service "spa"`,
		"only settlements offer services",
		`unknown direction "up"`,
		`leads to unknown location "attic"`,
		`success_location "nowhere" is not a known location`,
		"2 choices but 1 consequences",
		`unknown resource "gold"`,
		"resource amount must be non-zero",
		"the item pool is empty",
	} {
		assert.Contains(t, msg, want)
	}

	_, err = Build(s)
	assert.Error(t, err)
}

func TestValidate_StableOrder(t *testing.T) {
	s := &Scenario{
		Name:              "unordered",
		OpeningLocation:   "a",
		SuccessLocation:   "b",
		DetentionLocation: "c",
		Locations: []LocationSpec{
			{ID: "start", Name: "Start", Kind: LocationBorder, DangerLevel: -1, WaterScarcity: 12, PatrolIntensity: 11},
		},
		Players: map[string]PlayerDefaults{"tourist": {}, "pilot": {}, "smuggler": {}},
		Items:   []string{"Map"},
	}

	want := []string{
		"location start: danger_level -1 not in 0-10",
		"location start: water_scarcity 12 not in 0-10",
		"location start: patrol_intensity 11 not in 0-10",
		`opening_location "a" is not a known location`,
		`success_location "b" is not a known location`,
		`detention_location "c" is not a known location`,
		`players: unknown role "pilot"`,
		`players: unknown role "smuggler"`,
		`players: unknown role "tourist"`,
	}
	for i := 0; i < 20; i++ {
		err := s.Validate()
		require.Error(t, err)
		assert.Equal(t, strings.Join(want, "\n"), err.Error())
	}
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("nogales_mx"))
	assert.True(t, IsValidID("tucson"))
	assert.False(t, IsValidID("Tucson"))
	assert.False(t, IsValidID("border-fence"))
	assert.False(t, IsValidID("_x"))
}
