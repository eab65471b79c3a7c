package numed

// Row is a single line of the file being edited.
// render is always ExpandTabs(chars).
type Row struct {
	chars  string
	render string
}

// Chars returns the raw content of the row.
func (r *Row) Chars() string { return r.chars }

// Render returns the tab-expanded content of the row.
func (r *Row) Render() string { return r.render }

func (r *Row) update() {
	r.render = ExpandTabs(r.chars)
}

// Rows is the ordered line store of a document. It always holds at least one row.
type Rows struct {
	rows []*Row
}

// NewRows creates a store from the given raw lines.
// An empty slice gives a store with a single empty row.
func NewRows(lines []string) *Rows {
	s := &Rows{}
	for _, line := range lines {
		s.InsertRow(len(s.rows), line)
	}
	if len(s.rows) == 0 {
		s.InsertRow(0, "")
	}
	return s
}

// Len returns the number of rows.
func (s *Rows) Len() int {
	return len(s.rows)
}

// Get returns the row at the 0-based index at, or nil if out of range.
func (s *Rows) Get(at int) *Row {
	if at < 0 || at >= len(s.rows) {
		return nil
	}
	return s.rows[at]
}

// InsertRow inserts a row with the given content before index at.
// at == Len() appends.
func (s *Rows) InsertRow(at int, content string) bool {
	if at < 0 || at > len(s.rows) {
		return false
	}
	row := &Row{chars: content}
	row.update()
	if at == len(s.rows) {
		s.rows = append(s.rows, row)
	} else {
		s.rows = append(s.rows, nil)
		copy(s.rows[at+1:], s.rows[at:])
		s.rows[at] = row
	}
	return true
}

// RemoveRow deletes the row at index at. The last remaining row is never removed.
func (s *Rows) RemoveRow(at int) bool {
	if at < 0 || at >= len(s.rows) || len(s.rows) == 1 {
		return false
	}
	s.rows = append(s.rows[:at], s.rows[at+1:]...)
	return true
}

// ReplaceContent sets the raw content of the row at index at.
func (s *Rows) ReplaceContent(at int, content string) bool {
	row := s.Get(at)
	if row == nil {
		return false
	}
	row.chars = content
	row.update()
	return true
}

// InsertByte inserts c into the row at index at, before byte offset pos.
func (s *Rows) InsertByte(at, pos int, c byte) bool {
	row := s.Get(at)
	if row == nil || pos < 0 || pos > len(row.chars) {
		return false
	}
	return s.ReplaceContent(at, row.chars[:pos]+string([]byte{c})+row.chars[pos:])
}

// DeleteByte removes the byte at offset pos from the row at index at.
func (s *Rows) DeleteByte(at, pos int) bool {
	row := s.Get(at)
	if row == nil || pos < 0 || pos >= len(row.chars) {
		return false
	}
	return s.ReplaceContent(at, row.chars[:pos]+row.chars[pos+1:])
}

// AppendString appends str to the row at index at.
func (s *Rows) AppendString(at int, str string) bool {
	row := s.Get(at)
	if row == nil {
		return false
	}
	return s.ReplaceContent(at, row.chars+str)
}

// Lines returns the raw contents of all rows, in document order.
func (s *Rows) Lines() []string {
	lines := make([]string, len(s.rows))
	for i, row := range s.rows {
		lines[i] = row.chars
	}
	return lines
}
