package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestFromKey(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		expected Intents
	}{
		{"w is forward", tcell.KeyRune, 'w', Forward},
		{"Up is forward", tcell.KeyUp, 0, Forward},
		{"s is backward", tcell.KeyRune, 's', Backward},
		{"Down is backward", tcell.KeyDown, 0, Backward},
		{"a is strafe left", tcell.KeyRune, 'a', StrafeLeft},
		{"d is strafe right", tcell.KeyRune, 'd', StrafeRight},
		{"Left rotates left", tcell.KeyLeft, 0, RotateLeft},
		{"Right rotates right", tcell.KeyRight, 0, RotateRight},
		{"q quits", tcell.KeyRune, 'q', Quit},
		{"Esc quits", tcell.KeyEscape, 0, Quit},
		{"Unbound rune", tcell.KeyRune, 'z', 0},
		{"Unbound key", tcell.KeyTab, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.r, tcell.ModNone)
			if got := FromKey(ev); got != tt.expected {
				t.Errorf("FromKey = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIntentsCompose(t *testing.T) {
	set := Forward | StrafeLeft

	if !set.Has(Forward) || !set.Has(StrafeLeft) {
		t.Error("expected both set intents to be present")
	}
	if set.Has(Backward) || set.Has(Quit) {
		t.Error("unset intents must not be present")
	}
	if !set.Has(Forward | StrafeLeft) {
		t.Error("Has must match a combined mask")
	}
}
