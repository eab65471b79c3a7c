package numed

// OnResize updates the viewport to a terminal of cols x rows cells.
// Two rows are reserved for the title bar and the status line.
func (e *Editor) OnResize(cols, rows int) {
	e.screenrows = max(rows-2, 1)
	e.screencols = max(cols, 1)
}

func (e *Editor) handleResize() {
	cols, rows, err := e.term.Size()
	if err != nil {
		e.log.Warn("resize: size query failed", "err", err)
		return
	}
	e.log.Debug("resize", "cols", cols, "rows", rows)
	e.OnResize(cols, rows)
	e.refreshScreen()
}

// Scroll recomputes the render column of the cursor and moves the viewport
// so that the cursor cell is visible.
func (e *Editor) Scroll() {
	e.clampCursor()
	g := e.gutter()

	e.cur.RenderCol = g + 1
	if row := e.currentRow(); row != nil {
		e.cur.RenderCol = RenderColumn(row.chars, e.cur.Col, g)
	}

	if e.cur.Row <= e.rowoff {
		e.rowoff = e.cur.Row - 1
	}
	if e.cur.Row >= e.rowoff+e.screenrows {
		e.rowoff = e.cur.Row - e.screenrows
	}

	// At least one text column must remain beside the gutter.
	width := max(e.screencols, 2*g+2)
	if e.cur.RenderCol <= e.coloff+g {
		e.coloff = e.cur.RenderCol - g - 1
	}
	if e.cur.RenderCol >= e.coloff+(width-g) {
		e.coloff = e.cur.RenderCol - (width - g)
	}

	e.rowoff = max(e.rowoff, 0)
	e.coloff = max(e.coloff, 0)
}
