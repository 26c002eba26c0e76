package prompt

import (
	"errors"
	"testing"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Yes", true},
		{"  yep", true},
		{"n", false},
		{"", false},
		{"maybe", false},
	}
	for _, tt := range tests {
		s := NewScript(tt.answer)
		got, err := Confirm(s, "Sure? ")
		if err != nil {
			t.Fatalf("Confirm(%q) error: %v", tt.answer, err)
		}
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestConfirm_Closed(t *testing.T) {
	_, err := Confirm(NewScript(), "Sure? ")
	if !errors.Is(err, ErrClosed) {
		t.Errorf("Confirm() error = %v, want ErrClosed", err)
	}
}
