package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vicmd/vicmd/internal/dispatcher"
)

// Render draws the buffer, the cursor, and the status line.
func (t *Terminal) Render(d *dispatcher.Dispatcher) {
	t.screen.Clear()
	width, height := t.screen.Size()
	if height < 2 {
		t.screen.Show()
		return
	}
	textRows := height - 1

	buf := d.Buffer()
	cursor := buf.PointOf(d.Cursor().Offset())
	t.scrollTo(cursor.Line, textRows)

	style := tcell.StyleDefault
	for row := 0; row < textRows; row++ {
		line := t.top + row
		if line >= buf.LineCount() {
			break
		}
		text := buf.Slice(buf.LineStart(line), buf.LineEnd(line))
		t.drawLine(row, text, width, style)
	}

	t.drawStatus(d, width, height-1)

	cx := t.cellColumn(buf.Slice(buf.LineStart(cursor.Line), buf.LineEnd(cursor.Line)), cursor.Column)
	t.screen.ShowCursor(cx, cursor.Line-t.top)
	t.screen.Show()
}

// scrollTo keeps the cursor line inside the visible window.
func (t *Terminal) scrollTo(line, rows int) {
	if line < t.top {
		t.top = line
	}
	if line >= t.top+rows {
		t.top = line - rows + 1
	}
}

// drawLine renders one buffer line, expanding tabs and accounting for
// wide characters.
func (t *Terminal) drawLine(row int, text string, width int, style tcell.Style) {
	x := 0
	for _, r := range text {
		if x >= width {
			return
		}
		if r == '\t' {
			next := (x/t.tabWidth + 1) * t.tabWidth
			for ; x < next && x < width; x++ {
				t.screen.SetContent(x, row, ' ', nil, style)
			}
			continue
		}
		t.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// cellColumn converts a character column to a screen column.
func (t *Terminal) cellColumn(text string, col int) int {
	x := 0
	for i, r := range []rune(text) {
		if i >= col {
			break
		}
		if r == '\t' {
			x = (x/t.tabWidth + 1) * t.tabWidth
			continue
		}
		x += runewidth.RuneWidth(r)
	}
	return x
}

// drawStatus renders the bottom status line: mode and message on the
// left, pending keys and cursor position on the right.
func (t *Terminal) drawStatus(d *dispatcher.Dispatcher, width, row int) {
	style := tcell.StyleDefault.Reverse(true)

	p := d.Buffer().PointOf(d.Cursor().Offset())
	left := fmt.Sprintf(" %s  %s", d.Mode(), d.Message())
	right := fmt.Sprintf("%s  %d,%d ", d.Pending(), p.Line+1, p.Column+1)

	x := 0
	for _, r := range left {
		if x >= width {
			break
		}
		t.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < width-runewidth.StringWidth(right); x++ {
		t.screen.SetContent(x, row, ' ', nil, style)
	}
	for _, r := range right {
		if x >= width {
			break
		}
		t.screen.SetContent(x, row, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
