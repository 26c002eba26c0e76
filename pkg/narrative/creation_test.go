package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/the-line/pkg/actor"
	"github.com/jwebster45206/the-line/pkg/prompt"
	"github.com/jwebster45206/the-line/pkg/scenario"
)

func TestCreateCharacter(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   scenario.PlayerInfo
		warns  []string
	}{
		{
			name:   "migrant",
			inputs: []string{"1", "maria lopez", "guatemala", "  to find my brother "},
			want: scenario.PlayerInfo{
				Name: "Maria Lopez", Kind: actor.KindMigrant,
				Origin: "Guatemala", Motivation: "to find my brother",
			},
		},
		{
			name:   "role re-prompt",
			inputs: []string{"3", "migrant", "2", "Cole", "9"},
			want:   scenario.PlayerInfo{Name: "Cole", Kind: actor.KindBorderPatrol, YearsOfService: 9},
			warns:  []string{"Invalid choice. Please enter 1 or 2.", "Invalid choice. Please enter 1 or 2."},
		},
		{
			name:   "empty name re-prompt",
			inputs: []string{"2", "", "   ", "McAllen", "12"},
			want:   scenario.PlayerInfo{Name: "McAllen", Kind: actor.KindBorderPatrol, YearsOfService: 12},
		},
		{
			name:   "years default",
			inputs: []string{"2", "Cole", "a decade"},
			want:   scenario.PlayerInfo{Name: "Cole", Kind: actor.KindBorderPatrol, YearsOfService: DefaultYearsOfService},
		},
		{
			name:   "blank migrant answers",
			inputs: []string{"1", "Ana", "", ""},
			want:   scenario.PlayerInfo{Name: "Ana", Kind: actor.KindMigrant},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			io := prompt.NewScript(tt.inputs...)
			got, err := CreateCharacter(io)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			var warns []string
			for _, l := range io.Output {
				if l.Tone == prompt.Warning {
					warns = append(warns, l.Text)
				}
			}
			assert.Equal(t, tt.warns, warns)
		})
	}
}

func TestCreateCharacter_EmptyNamePrompt(t *testing.T) {
	io := prompt.NewScript("1", "", "Ana", "Oaxaca", "work")
	_, err := CreateCharacter(io)
	require.NoError(t, err)
	assert.Contains(t, io.Prompts, "Name cannot be empty. Please enter a name: ")
}

func TestCreateCharacter_YearsDefaultNotice(t *testing.T) {
	io := prompt.NewScript("2", "Cole", "lots")
	_, err := CreateCharacter(io)
	require.NoError(t, err)
	assert.Contains(t, io.Said(), "Using default: 5 years")
}

func TestCreateCharacter_ClosedInput(t *testing.T) {
	_, err := CreateCharacter(prompt.NewScript("1", "Ana"))
	assert.ErrorIs(t, err, prompt.ErrClosed)
}
