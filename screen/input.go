package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a minimal key identifier for the non-text keys the UI reacts to.
type Key uint16

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyDelete
	KeyHome
	KeyEnd
	KeyF1
	KeyF2
)

// Event is one key press: either a special Key or a typed Rune.
type Event struct {
	Key  Key
	Rune rune
}

// Input collects one tick's worth of keyboard and mouse state. The window
// fills it before each step; handlers drain Events and check Click.
type Input struct {
	events []Event

	clickX  int
	clickY  int
	clicked bool
}

// Events returns the key presses gathered this tick, in arrival order.
func (in *Input) Events() []Event { return in.events }

// Click reports a left-button press this tick in framebuffer coordinates.
func (in *Input) Click() (x, y int, ok bool) {
	return in.clickX, in.clickY, in.clicked
}

// poll gathers typed characters, special keys, and mouse clicks from ebiten.
// Letter keys arrive as text input only; navigation uses the dedicated keys.
func (in *Input) poll() {
	in.events = in.events[:0]
	in.clicked = false

	for _, r := range ebiten.AppendInputChars(nil) {
		in.events = append(in.events, Event{Rune: r})
	}

	keys := []struct {
		eb ebiten.Key
		k  Key
	}{
		{eb: ebiten.KeyArrowUp, k: KeyUp},
		{eb: ebiten.KeyArrowDown, k: KeyDown},
		{eb: ebiten.KeyArrowLeft, k: KeyLeft},
		{eb: ebiten.KeyArrowRight, k: KeyRight},
		{eb: ebiten.KeyEnter, k: KeyEnter},
		{eb: ebiten.KeyNumpadEnter, k: KeyEnter},
		{eb: ebiten.KeyEscape, k: KeyEscape},
		{eb: ebiten.KeyBackspace, k: KeyBackspace},
		{eb: ebiten.KeyTab, k: KeyTab},
		{eb: ebiten.KeyDelete, k: KeyDelete},
		{eb: ebiten.KeyHome, k: KeyHome},
		{eb: ebiten.KeyEnd, k: KeyEnd},
		{eb: ebiten.KeyF1, k: KeyF1},
		{eb: ebiten.KeyF2, k: KeyF2},
	}
	for _, m := range keys {
		if inpututil.IsKeyJustPressed(m.eb) {
			in.events = append(in.events, Event{Key: m.k})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.clickX, in.clickY = ebiten.CursorPosition()
		in.clicked = true
	}
}
