package chance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScripted(t *testing.T) {
	s := &Scripted{Ints: []int{2, 9, -1}, Floats: []float64{0.1}}

	assert.Equal(t, 2, s.Intn(5))
	assert.Equal(t, 4, s.Intn(5), "values past n are capped")
	assert.Equal(t, 0, s.Intn(5), "negative values are floored")
	assert.Equal(t, 0, s.Intn(5), "exhausted queue returns 0")

	assert.True(t, Roll(s, 0.15))
	assert.False(t, Roll(s, 0.15), "exhausted floats never fire")
}

func TestPick(t *testing.T) {
	s := &Scripted{Ints: []int{1}}
	v, ok := Pick(s, []string{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = Pick(s, []string{})
	assert.False(t, ok)
}

func TestBetween(t *testing.T) {
	src := Seeded(42)
	for i := 0; i < 200; i++ {
		v := Between(src, 1, 10)
		if v < 1 || v > 10 {
			t.Fatalf("Between(1, 10) = %d, out of range", v)
		}
	}
}
