package state

// MoveCursorUp moves the cursor up one row, wrapping to the bottom.
func (p *Panel) MoveCursorUp() bool {
	return p.wrapBy(-1)
}

// MoveCursorDown moves the cursor down one row, wrapping to the top.
func (p *Panel) MoveCursorDown() bool {
	return p.wrapBy(1)
}

// MoveCursorHome moves the cursor to the first entry.
func (p *Panel) MoveCursorHome() bool {
	if len(p.Entries) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (p *Panel) MoveCursorEnd() bool {
	n := len(p.Entries)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

func (p *Panel) wrapBy(delta int) bool {
	n := len(p.Entries)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = ((p.Cursor+delta)%n + n) % n
	return p.Cursor != old
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Panel) EnsureCursorVisible(maxVisible int) {
	if len(p.Entries) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	p.clampCursor()
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Entries) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if upper := p.ViewportOffset + maxVisible - 1; p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
	}
}
