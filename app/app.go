// Package app is the desktop calculator front end: a keypad-and-history tab
// and a plot tab, rendered into an RGB565 framebuffer and driven by keyboard
// and mouse input once per tick.
package app

import (
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"tical/engine"
	"tical/graph"
	"tical/screen"
)

type tab uint8

const (
	tabCalc tab = iota
	tabGraph
)

// App holds the interface state between ticks.
type App struct {
	eng *engine.Engine
	gr  *graph.Grapher
	fb  *screen.Framebuffer
	c   *screen.Canvas

	tab tab

	input  []rune
	cursor int

	// histPos indexes the engine history while browsing with the arrow
	// keys; -1 means not browsing.
	histPos int

	display string
	message string

	keypad []button
}

// New wires the front end to an engine and grapher. The framebuffer should be
// 480x320; smaller sizes render but clip the keypad.
func New(eng *engine.Engine, gr *graph.Grapher, fb *screen.Framebuffer) *App {
	return &App{
		eng:     eng,
		gr:      gr,
		fb:      fb,
		c:       screen.NewCanvas(fb),
		display: "0",
		histPos: -1,
		keypad:  keypadLayout(),
	}
}

// Step handles one tick of input and redraws the framebuffer. It returns
// ebiten.Termination when the user quits.
func (a *App) Step(in *screen.Input) error {
	for _, ev := range in.Events() {
		if ev.Rune != 0 {
			a.handleRune(ev.Rune)
			continue
		}
		if err := a.handleKey(ev.Key); err != nil {
			return err
		}
	}
	if x, y, ok := in.Click(); ok && a.tab == tabCalc {
		if b := a.hitButton(x, y); b != nil {
			a.press(b)
		}
	}
	a.render()
	return nil
}

func (a *App) handleRune(r rune) {
	if a.tab == tabGraph {
		switch r {
		case '+':
			a.gr.ZoomIn()
		case '-':
			a.gr.ZoomOut()
		case '0':
			a.gr.ResetWindow()
		}
		return
	}
	if r < ' ' {
		return
	}
	a.insertRune(r)
}

func (a *App) handleKey(k screen.Key) error {
	switch k {
	case screen.KeyEscape:
		return ebiten.Termination
	case screen.KeyTab, screen.KeyF2:
		a.switchTab()
		return nil
	}

	if a.tab == tabGraph {
		switch k {
		case screen.KeyLeft:
			a.pan(-0.1, 0)
		case screen.KeyRight:
			a.pan(0.1, 0)
		case screen.KeyUp:
			a.pan(0, 0.1)
		case screen.KeyDown:
			a.pan(0, -0.1)
		}
		return nil
	}

	switch k {
	case screen.KeyEnter:
		a.submit()
	case screen.KeyBackspace:
		a.backspace()
	case screen.KeyDelete:
		a.deleteForward()
	case screen.KeyLeft:
		if a.cursor > 0 {
			a.cursor--
		}
	case screen.KeyRight:
		if a.cursor < len(a.input) {
			a.cursor++
		}
	case screen.KeyHome:
		a.cursor = 0
	case screen.KeyEnd:
		a.cursor = len(a.input)
	case screen.KeyUp:
		a.histUp()
	case screen.KeyDown:
		a.histDown()
	}
	return nil
}

func (a *App) switchTab() {
	if a.tab == tabCalc {
		a.tab = tabGraph
	} else {
		a.tab = tabCalc
	}
	a.message = ""
}

func (a *App) insertRune(r rune) {
	a.histPos = -1
	a.input = append(a.input, 0)
	copy(a.input[a.cursor+1:], a.input[a.cursor:])
	a.input[a.cursor] = r
	a.cursor++
}

func (a *App) insertText(s string) {
	for _, r := range s {
		a.insertRune(r)
	}
}

func (a *App) backspace() {
	a.histPos = -1
	if a.cursor == 0 {
		return
	}
	a.input = append(a.input[:a.cursor-1], a.input[a.cursor:]...)
	a.cursor--
}

func (a *App) deleteForward() {
	a.histPos = -1
	if a.cursor >= len(a.input) {
		return
	}
	a.input = append(a.input[:a.cursor], a.input[a.cursor+1:]...)
}

func (a *App) setInput(s string) {
	a.input = append(a.input[:0], []rune(s)...)
	a.cursor = len(a.input)
}

func (a *App) clearInput() {
	a.histPos = -1
	a.input = a.input[:0]
	a.cursor = 0
	a.display = "0"
	a.message = ""
}

func (a *App) submit() {
	line := strings.TrimSpace(string(a.input))
	if line == "" {
		return
	}
	a.histPos = -1
	a.message = ""
	if a.runCommand(line) {
		a.input = a.input[:0]
		a.cursor = 0
		return
	}
	res := a.eng.Evaluate(line)
	a.display = res.Text
	a.input = a.input[:0]
	a.cursor = 0
}

// runCommand intercepts the non-arithmetic inputs: equation slot assignments,
// window edits, mode switches, and the graph shortcut. It reports whether the
// line was consumed.
func (a *App) runCommand(line string) bool {
	if len(line) >= 3 && (line[0] == 'Y' || line[0] == 'y') &&
		line[1] >= '1' && line[1] <= '6' && line[2] == '=' {
		label := "Y" + string(line[1])
		src := strings.TrimSpace(line[3:])
		if err := a.gr.SetEquation(label, src); err != nil {
			a.message = engine.ErrorText(err)
			return true
		}
		if src == "" {
			a.message = label + " cleared"
		} else {
			a.message = label + " set"
		}
		return true
	}

	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "graph":
		a.tab = tabGraph
		return true
	case "mode":
		if len(fields) == 2 {
			switch strings.ToLower(fields[1]) {
			case "deg":
				a.eng.Env().SetUnit(engine.Degrees)
				a.message = "angle unit: DEG"
				return true
			case "rad":
				a.eng.Env().SetUnit(engine.Radians)
				a.message = "angle unit: RAD"
				return true
			}
		}
		a.message = "usage: mode deg|rad"
		return true
	case "window":
		a.editWindow(fields[1:])
		return true
	}
	return false
}

func (a *App) editWindow(args []string) {
	if len(args) == 0 {
		w := a.gr.Window()
		a.message = "window " +
			fmtWindow(w.XMin) + " " + fmtWindow(w.XMax) + " " +
			fmtWindow(w.YMin) + " " + fmtWindow(w.YMax)
		return
	}
	if len(args) != 4 {
		a.message = "usage: window xmin xmax ymin ymax"
		return
	}
	vals := make([]float64, 4)
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			a.message = "usage: window xmin xmax ymin ymax"
			return
		}
		vals[i] = v
	}
	w := graph.Window{XMin: vals[0], XMax: vals[1], YMin: vals[2], YMax: vals[3]}
	if err := a.gr.SetWindow(w); err != nil {
		a.message = "window: min must be below max"
		return
	}
	a.message = "window set"
}

func fmtWindow(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func (a *App) histUp() {
	hist := a.eng.History()
	if len(hist) == 0 {
		return
	}
	if a.histPos == -1 {
		a.histPos = len(hist) - 1
	} else if a.histPos > 0 {
		a.histPos--
	}
	a.setInput(hist[a.histPos].Expression)
}

func (a *App) histDown() {
	if a.histPos == -1 {
		return
	}
	hist := a.eng.History()
	if a.histPos >= len(hist)-1 {
		a.histPos = -1
		a.input = a.input[:0]
		a.cursor = 0
		return
	}
	a.histPos++
	a.setInput(hist[a.histPos].Expression)
}

func (a *App) pan(dxFrac, dyFrac float64) {
	w := a.gr.Window()
	dx := (w.XMax - w.XMin) * dxFrac
	dy := (w.YMax - w.YMin) * dyFrac
	_ = a.gr.SetWindow(graph.Window{
		XMin: w.XMin + dx, XMax: w.XMax + dx,
		YMin: w.YMin + dy, YMax: w.YMax + dy,
	})
}

// memoryValue resolves the operand for the memory keys: the current input
// when present, otherwise Ans. A failed evaluation returns false and leaves
// the error text on the display.
func (a *App) memoryValue() (float64, bool) {
	line := strings.TrimSpace(string(a.input))
	if line == "" {
		return a.eng.Ans(), true
	}
	res := a.eng.Evaluate(line)
	a.display = res.Text
	a.input = a.input[:0]
	a.cursor = 0
	if res.Failed() {
		return 0, false
	}
	return res.Value, true
}

func (a *App) press(b *button) {
	switch b.op {
	case opInsert:
		a.insertText(b.text)
	case opClear:
		a.clearInput()
	case opDelete:
		a.backspace()
	case opEval:
		a.submit()
	case opMemAdd:
		if v, ok := a.memoryValue(); ok {
			a.eng.AddMemory(v)
			a.message = "M = " + engine.Format(a.eng.RecallMemory(), 6)
		}
	case opMemSub:
		if v, ok := a.memoryValue(); ok {
			a.eng.SubtractMemory(v)
			a.message = "M = " + engine.Format(a.eng.RecallMemory(), 6)
		}
	case opMemRecall:
		a.insertText(engine.Format(a.eng.RecallMemory(), a.eng.Precision()))
	case opMemClear:
		a.eng.ClearMemory()
		a.message = "memory cleared"
	case opGraphTab:
		a.tab = tabGraph
	case opZoomIn:
		a.gr.ZoomIn()
		a.message = "zoomed in"
	case opZoomOut:
		a.gr.ZoomOut()
		a.message = "zoomed out"
	case opMode:
		env := a.eng.Env()
		if env.Unit() == engine.Degrees {
			env.SetUnit(engine.Radians)
			a.message = "angle unit: RAD"
		} else {
			env.SetUnit(engine.Degrees)
			a.message = "angle unit: DEG"
		}
	}
}
