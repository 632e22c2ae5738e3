package buffer

// Cursor is a live position in a buffer. It implements Locator, so it
// can be handed to the range algebra, which reads the offset once and
// works with the plain value from then on.
type Cursor struct {
	buf *Buffer
	off Offset

	// goalColumn preserves the preferred column across vertical motion.
	// Negative means unset.
	goalColumn int
}

// NewCursor creates a cursor at offset 0.
func NewCursor(buf *Buffer) *Cursor {
	return &Cursor{buf: buf, goalColumn: -1}
}

// Offset returns the cursor's current offset.
func (c *Cursor) Offset() Offset {
	return c.off
}

// Buffer returns the buffer the cursor points into.
func (c *Cursor) Buffer() *Buffer {
	return c.buf
}

// Set moves the cursor to the given offset, clamped to the buffer.
// Horizontal movement resets the goal column.
func (c *Cursor) Set(o Offset) {
	c.off = c.buf.Clamp(o)
	c.goalColumn = -1
}

// Point returns the cursor's line/column position.
func (c *Cursor) Point() Point {
	return c.buf.PointOf(c.off)
}

// MoveVertical moves the cursor by delta lines, keeping the goal column
// where the target line is long enough. Returns the number of unmet
// lines (0 if the full move succeeded).
func (c *Cursor) MoveVertical(delta int) int {
	p := c.Point()
	if c.goalColumn < 0 {
		c.goalColumn = p.Column
	}

	target := p.Line + delta
	short := 0
	if target < 0 {
		short = target
		target = 0
	} else if last := c.buf.LineCount() - 1; target > last {
		short = target - last
		target = last
	}

	c.off = c.buf.OffsetOf(Point{Line: target, Column: c.goalColumn})
	return short
}
