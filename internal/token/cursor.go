package token

// Cursor scans a byte string one byte at a time. A paused cursor re-reads
// its current byte on the next Advance instead of moving forward, which lets
// a caller peek a byte and hand it to a sub-scanner.
//
// A new cursor starts paused at position 0, so the first Advance returns the
// first byte.
type Cursor struct {
	text   string
	pos    int
	paused bool
}

func NewCursor(text string) *Cursor {
	return &Cursor{text: text, paused: true}
}

// Advance returns the next byte, or false once the input is exhausted. After
// it has reported the end it keeps reporting the end.
func (c *Cursor) Advance() (byte, bool) {
	if c.paused {
		c.paused = false
	} else if c.pos < len(c.text) {
		c.pos++
	}

	if c.pos >= len(c.text) {
		return 0, false
	}
	return c.text[c.pos], true
}

// Pause makes the next Advance return the current byte again.
func (c *Cursor) Pause() {
	c.paused = true
}
