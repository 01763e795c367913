package indicator

// Cross tracks two lines fed with the same samples and reports when they
// cross. A golden cross is the short (reactive) line crossing above the
// long (historic) line; a death cross is the opposite. The crossed state is
// not sticky: it clears on the next update unless another flip occurs.
type Cross struct {
	short   Line
	long    Line
	crossed bool
}

// NewCross wraps two seeded lines. The Cross owns both lines and advances
// them itself; callers must not update them separately.
func NewCross(short, long Line) *Cross {
	return &Cross{short: short, long: long}
}

// Short returns the wrapped reactive line.
func (c *Cross) Short() Line { return c.short }

// Long returns the wrapped historic line.
func (c *Cross) Long() Line { return c.long }

// Crossed reports whether the last Next call flipped the lines' order.
func (c *Cross) Crossed() bool { return c.crossed }

// IsGolden reports a cross with the short line now above the long line.
func (c *Cross) IsGolden() bool {
	return c.crossed && c.short.Value() > c.long.Value()
}

// IsDeath reports a cross with the short line now below the long line.
func (c *Cross) IsDeath() bool {
	return c.crossed && c.short.Value() < c.long.Value()
}

// Next advances both lines by the same sample and reports whether their
// order flipped.
func (c *Cross) Next(v Num) bool {
	wasBelow := c.short.Value() < c.long.Value()

	c.short.Next(v)
	c.long.Next(v)

	c.crossed = wasBelow != (c.short.Value() < c.long.Value())
	return c.crossed
}
