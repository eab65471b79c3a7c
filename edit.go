package numed

// ---------- Cursor helpers ----------

func (e *Editor) gutter() int {
	return GutterWidth(e.rows.Len())
}

// currentRow returns the row under the cursor, or nil on the virtual row.
func (e *Editor) currentRow() *Row {
	return e.rows.Get(e.cur.Row - 1)
}

func (e *Editor) onVirtualRow() bool {
	return e.cur.Row > e.rows.Len()
}

// onLastEmptyRow reports whether the cursor is on the last row and that row is empty.
func (e *Editor) onLastEmptyRow() bool {
	row := e.currentRow()
	return row != nil && e.cur.Row == e.rows.Len() && row.chars == ""
}

// endCol returns the column just past the last character of the current row.
func (e *Editor) endCol() int {
	n := 0
	if row := e.currentRow(); row != nil {
		n = len(row.chars)
	}
	return n + e.gutter() + 1
}

// clampCursor keeps the cursor inside the document.
func (e *Editor) clampCursor() {
	e.cur.Row = min(max(e.cur.Row, 1), e.rows.Len()+1)
	e.cur.Col = min(max(e.cur.Col, e.gutter()+1), e.endCol())
}

// rebase shifts the cursor column after the gutter width may have changed
// from oldGutter, then clamps.
func (e *Editor) rebase(oldGutter int) {
	e.cur.Col += e.gutter() - oldGutter
	e.clampCursor()
}

// materializeVirtualRow turns the virtual trailing row into a real empty row.
func (e *Editor) materializeVirtualRow() {
	if !e.onVirtualRow() {
		return
	}
	g := e.gutter()
	e.rows.InsertRow(e.rows.Len(), "")
	e.modified = true
	e.rebase(g)
}

// ---------- Editor operations ----------

// InsertChar inserts c at the cursor. It does nothing on the virtual row.
func (e *Editor) InsertChar(c byte) {
	e.clampCursor()
	if e.onVirtualRow() {
		return
	}
	g := e.gutter()
	if !e.rows.InsertByte(e.cur.Row-1, e.cur.Col-(g+1), c) {
		return
	}
	e.cur.Col++
	e.modified = true
}

// InsertNewline breaks the line at the cursor and moves to the start of the next row.
func (e *Editor) InsertNewline() {
	e.clampCursor()
	g := e.gutter()
	at := e.cur.Row - 1
	row := e.currentRow()

	switch {
	case row != nil && e.cur.Row == e.rows.Len() && e.cur.Col == len(row.chars)+g+1:
		// End of the buffer: move to the virtual row without creating it.
	case row == nil || e.cur.Col == g+1:
		e.rows.InsertRow(at, "")
	default:
		pos := e.cur.Col - (g + 1)
		chars := row.chars
		e.rows.InsertRow(at+1, chars[pos:])
		e.rows.ReplaceContent(at, chars[:pos])
	}
	e.cur.Row++
	e.cur.Col = e.gutter() + 1
	e.modified = true
}

// Backspace deletes the character before the cursor, joining the current
// row onto the previous one when the cursor is at the start of a row.
func (e *Editor) Backspace() {
	e.clampCursor()
	if e.onVirtualRow() {
		return
	}
	g := e.gutter()
	if e.cur.Row == 1 && e.cur.Col == g+1 {
		return
	}
	at := e.cur.Row - 1
	if e.cur.Col > g+1 {
		e.cur.Col--
		e.rows.DeleteByte(at, e.cur.Col-(g+1))
	} else {
		join := len(e.rows.Get(at - 1).chars)
		e.rows.AppendString(at-1, e.rows.Get(at).chars)
		e.rows.RemoveRow(at)
		e.cur.Row--
		e.cur.Col = join + e.gutter() + 1
	}
	e.modified = true
}

// ForwardDelete deletes the character, or line break, right of the cursor.
func (e *Editor) ForwardDelete() {
	e.clampCursor()
	if e.onVirtualRow() {
		return
	}
	if e.cur.Row == e.rows.Len() && e.cur.Col == e.endCol() {
		return
	}
	e.MoveRight()
	e.Backspace()
}

// ---------- Cursor movement ----------

// MoveUp moves the cursor one row up.
func (e *Editor) MoveUp() {
	if e.cur.Row > 1 {
		e.cur.Row--
	}
	e.clampCursor()
}

// MoveDown moves the cursor one row down, at most onto the virtual row.
func (e *Editor) MoveDown() {
	if !e.onVirtualRow() && !e.onLastEmptyRow() {
		e.cur.Row++
	}
	e.clampCursor()
}

// MoveLeft moves the cursor one column left, wrapping to the end of the previous row.
func (e *Editor) MoveLeft() {
	if e.cur.Col > e.gutter()+1 {
		e.cur.Col--
	} else if e.cur.Row > 1 {
		e.cur.Row--
		e.cur.Col = e.endCol()
	}
	e.clampCursor()
}

// MoveRight moves the cursor one column right, wrapping to the start of the next row.
func (e *Editor) MoveRight() {
	if e.onVirtualRow() {
		return
	}
	if e.cur.Col < e.endCol() {
		e.cur.Col++
	} else if !e.onLastEmptyRow() {
		e.cur.Row++
		e.cur.Col = e.gutter() + 1
	}
	e.clampCursor()
}

// Home moves the cursor to the start of the row.
func (e *Editor) Home() {
	e.cur.Col = e.gutter() + 1
}

// End moves the cursor past the last character of the row.
func (e *Editor) End() {
	e.cur.Col = e.endCol()
}

// PageUp moves the cursor to the top of the screen, then one screen up.
func (e *Editor) PageUp() {
	e.cur.Row = e.rowoff + 1
	for range e.screenrows {
		if e.cur.Row == 1 {
			break
		}
		e.cur.Row--
	}
	e.clampCursor()
}

// PageDown moves the cursor to the bottom of the screen, then one screen down.
func (e *Editor) PageDown() {
	e.cur.Row = min(e.rowoff+e.screenrows, e.rows.Len())
	for range e.screenrows {
		if e.onVirtualRow() || e.onLastEmptyRow() {
			break
		}
		e.cur.Row++
	}
	e.clampCursor()
}
