package input

import "github.com/gdamore/tcell/v2"

// Intents is a frame-scoped bitmask of movement, rotation, and system
// commands. Intents accumulate over one frame's drained key events and
// are discarded after the physics update; they carry no key identity.
type Intents uint8

const (
	Forward Intents = 1 << iota
	Backward
	StrafeLeft
	StrafeRight
	RotateLeft
	RotateRight
	Quit
)

// Has reports whether all bits of intent are set.
func (i Intents) Has(intent Intents) bool {
	return i&intent == intent
}

// FromKey translates a key press into its intent, or 0 for keys the
// game does not bind.
func FromKey(ev *tcell.EventKey) Intents {
	switch ev.Key() {
	case tcell.KeyUp:
		return Forward
	case tcell.KeyDown:
		return Backward
	case tcell.KeyLeft:
		return RotateLeft
	case tcell.KeyRight:
		return RotateRight
	case tcell.KeyEscape:
		return Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w':
			return Forward
		case 's':
			return Backward
		case 'a':
			return StrafeLeft
		case 'd':
			return StrafeRight
		case 'q':
			return Quit
		}
	}
	return 0
}
