package app

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"tical/engine"
	"tical/screen"
)

var uiFont = &proggy.TinySZ8pt7b

const (
	uiFontHeight = 10
	uiFontOffset = 7

	headerH = 14

	displayX = 4
	displayY = 16
	displayH = 40

	historyX = 264
	historyY = keypadY
	messageY = 309
)

var (
	uiBG      = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	uiHeader  = color.RGBA{R: 0x16, G: 0x16, B: 0x16, A: 0xFF}
	uiPanel   = color.RGBA{R: 0x10, G: 0x1C, B: 0x1C, A: 0xFF}
	uiBorder  = color.RGBA{R: 0x3A, G: 0x3A, B: 0x3A, A: 0xFF}
	uiKeyBG   = color.RGBA{R: 0x2A, G: 0x2A, B: 0x2A, A: 0xFF}
	uiFG      = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	uiDim     = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	uiResult  = color.RGBA{R: 0x9D, G: 0xFF, B: 0x91, A: 0xFF}
	uiHistory = color.RGBA{R: 0x90, G: 0xF7, B: 0xFF, A: 0xFF}
	uiError   = color.RGBA{R: 0xFF, G: 0x5A, B: 0x5A, A: 0xFF}
)

func uiFontWidth() int16 {
	_, w := tinyfont.LineWidth(uiFont, "0")
	return int16(w)
}

func drawText(c *screen.Canvas, x, y int16, s string, fg color.RGBA) {
	tinyfont.WriteLine(c, uiFont, x, y+uiFontOffset, s, fg)
}

func drawTextRight(c *screen.Canvas, right, y int16, s string, fg color.RGBA) {
	w, _ := tinyfont.LineWidth(uiFont, s)
	drawText(c, right-int16(w), y, s, fg)
}

func drawBox(c *screen.Canvas, x, y, w, h int16, fill, border color.RGBA) {
	c.FillRect(x, y, w, h, fill)
	c.FillRect(x, y, w, 1, border)
	c.FillRect(x, y+h-1, w, 1, border)
	c.FillRect(x, y, 1, h, border)
	c.FillRect(x+w-1, y, 1, h, border)
}

func (a *App) render() {
	a.fb.ClearRGB(0, 0, 0)
	w := int16(a.fb.Width())
	h := int16(a.fb.Height())

	a.drawHeader(w)

	switch a.tab {
	case tabCalc:
		a.drawDisplay(w)
		a.drawKeypad()
		a.drawHistory(w, h)
	case tabGraph:
		if err := a.gr.Render(a.c, 0, headerH+2, w, h-headerH-uiFontHeight-4); err != nil {
			drawText(a.c, 8, headerH+12, "no functions set", uiDim)
			drawText(a.c, 8, headerH+24, "type Y1=sin(x) on the calc tab, then GRAPH", uiDim)
		}
	}

	a.drawMessage(w, h)
}

func (a *App) drawHeader(w int16) {
	a.c.FillRect(0, 0, w, headerH, uiHeader)
	drawText(a.c, 4, 2, "TI-CAL", uiFG)

	unit := "DEG"
	if a.eng.Env().Unit() == engine.Radians {
		unit = "RAD"
	}
	name := "CALC"
	hint := "tab:graph  esc:quit"
	if a.tab == tabGraph {
		name = "GRAPH"
		hint = "arrows:pan  +/-:zoom  0:reset  tab:calc"
	}
	drawText(a.c, 60, 2, unit+"  "+name, uiDim)
	drawTextRight(a.c, w-4, 2, hint, uiDim)
}

func (a *App) drawDisplay(w int16) {
	drawBox(a.c, displayX, displayY, w-2*displayX, displayH, uiPanel, uiBorder)

	fw := uiFontWidth()
	inner := w - 2*displayX - 12

	// Input line with a caret. Long input scrolls left to keep the caret
	// visible.
	maxChars := int(inner / fw)
	runes := a.input
	cursor := a.cursor
	if maxChars > 1 && len(runes) > maxChars {
		start := cursor - maxChars + 1
		if start < 0 {
			start = 0
		}
		if start > len(runes)-maxChars {
			start = len(runes) - maxChars
		}
		runes = runes[start:]
		cursor -= start
	}
	drawText(a.c, displayX+6, displayY+5, string(runes), uiFG)
	caretX := displayX + 6 + int16(cursor)*fw
	a.c.FillRect(caretX, displayY+5, 1, uiFontHeight, uiResult)

	// Result line, right aligned like a seven segment display.
	col := uiResult
	if hist := a.eng.History(); len(hist) > 0 && hist[len(hist)-1].Failed() &&
		hist[len(hist)-1].Text == a.display {
		col = uiError
	}
	drawTextRight(a.c, w-displayX-6, displayY+displayH-uiFontHeight-5, a.display, col)
}

func (a *App) drawKeypad() {
	for i := range a.keypad {
		b := &a.keypad[i]
		drawBox(a.c, int16(b.x), int16(b.y), int16(b.w), int16(b.h), uiKeyBG, uiBorder)
		lw, _ := tinyfont.LineWidth(uiFont, b.label)
		lx := int16(b.x) + (int16(b.w)-int16(lw))/2
		ly := int16(b.y) + (int16(b.h)-uiFontHeight)/2
		drawText(a.c, lx, ly, b.label, uiFG)
	}
}

func (a *App) drawHistory(w, h int16) {
	x := int16(historyX)
	y := int16(historyY)
	boxW := w - x - displayX
	boxH := h - y - (h - messageY)
	drawBox(a.c, x, y, boxW, boxH, uiPanel, uiBorder)
	drawText(a.c, x+4, y+3, "HISTORY", uiDim)

	fw := uiFontWidth()
	maxChars := int((boxW - 8) / fw)
	rows := int(boxH-18) / uiFontHeight

	hist := a.eng.History()
	line := y + 16
	for i := len(hist) - 1; i >= 0 && rows > 0; i-- {
		entry := hist[i].Expression + " = " + hist[i].Text
		if len(entry) > maxChars && maxChars > 3 {
			entry = entry[:maxChars-3] + "..."
		}
		col := uiHistory
		if hist[i].Failed() {
			col = uiError
		}
		drawText(a.c, x+4, line, entry, col)
		line += uiFontHeight
		rows--
	}
}

func (a *App) drawMessage(w, h int16) {
	if a.message == "" {
		return
	}
	drawText(a.c, displayX, h-uiFontHeight-1, a.message, uiDim)
}
