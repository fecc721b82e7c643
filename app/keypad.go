package app

type buttonOp uint8

const (
	opInsert buttonOp = iota
	opClear
	opDelete
	opEval
	opMemAdd
	opMemSub
	opMemRecall
	opMemClear
	opGraphTab
	opZoomIn
	opZoomOut
	opMode
)

// button is one keypad cell with its framebuffer rectangle.
type button struct {
	label string
	text  string
	op    buttonOp

	x, y, w, h int
}

// Keypad geometry. Nine rows of five buttons fill the left half of a 480x320
// framebuffer below the display box.
const (
	keypadX    = 4
	keypadY    = 60
	buttonW    = 47
	buttonH    = 24
	buttonGapX = 4
	buttonGapY = 4
)

// keypadLayout builds the TI style keypad. Function keys insert an open call
// so the user supplies the argument; the bottom rows hold memory, mode, and
// plot controls.
func keypadLayout() []button {
	type spec struct {
		label string
		text  string
		op    buttonOp
	}
	rows := [][]spec{
		{{"SIN", "sin(", opInsert}, {"COS", "cos(", opInsert}, {"TAN", "tan(", opInsert}, {"^", "^", opInsert}, {"SQRT", "sqrt(", opInsert}},
		{{"7", "7", opInsert}, {"8", "8", opInsert}, {"9", "9", opInsert}, {"/", "/", opInsert}, {"LOG", "log(", opInsert}},
		{{"4", "4", opInsert}, {"5", "5", opInsert}, {"6", "6", opInsert}, {"*", "*", opInsert}, {"LN", "ln(", opInsert}},
		{{"1", "1", opInsert}, {"2", "2", opInsert}, {"3", "3", opInsert}, {"-", "-", opInsert}, {"PI", "pi", opInsert}},
		{{"0", "0", opInsert}, {".", ".", opInsert}, {"X", "x", opInsert}, {"+", "+", opInsert}, {"E", "e", opInsert}},
		{{"(", "(", opInsert}, {")", ")", opInsert}, {",", ",", opInsert}, {"ANS", "Ans", opInsert}, {"!", "!", opInsert}},
		{{"ABS", "abs(", opInsert}, {"M+", "", opMemAdd}, {"M-", "", opMemSub}, {"MR", "", opMemRecall}, {"MC", "", opMemClear}},
		{{"Y=", "Y1=", opInsert}, {"WIN", "window ", opInsert}, {"Z+", "", opZoomIn}, {"Z-", "", opZoomOut}, {"GRAPH", "", opGraphTab}},
		{{"MODE", "", opMode}, {"CLR", "", opClear}, {"DEL", "", opDelete}, {"(-)", "-", opInsert}, {"=", "", opEval}},
	}

	var out []button
	for ri, row := range rows {
		for ci, s := range row {
			out = append(out, button{
				label: s.label,
				text:  s.text,
				op:    s.op,
				x:     keypadX + ci*(buttonW+buttonGapX),
				y:     keypadY + ri*(buttonH+buttonGapY),
				w:     buttonW,
				h:     buttonH,
			})
		}
	}
	return out
}

// hitButton maps a click in framebuffer coordinates to a keypad button.
func (a *App) hitButton(x, y int) *button {
	for i := range a.keypad {
		b := &a.keypad[i]
		if x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h {
			return b
		}
	}
	return nil
}
