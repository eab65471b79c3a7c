package numed

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const untitled = "Text Editor"

type styles struct {
	bar    lipgloss.Style
	gutter lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	base := r.NewStyle().
		Background(lipgloss.Color("7")).
		Foreground(lipgloss.Color("0"))
	return styles{
		bar:    base,
		gutter: base.Align(lipgloss.Right),
	}
}

// ---------- Terminal update ----------

// prepareFrame makes the virtual trailing row real when the cursor parks on
// it, unless the last row is already empty, then scrolls.
func (e *Editor) prepareFrame() {
	e.clampCursor()
	if e.onVirtualRow() {
		if last := e.rows.Get(e.rows.Len() - 1); last.chars != "" {
			e.materializeVirtualRow()
		}
	}
	e.Scroll()
}

func (e *Editor) refreshScreen() {
	e.prepareFrame()

	var ab bytes.Buffer
	ab.WriteString("\x1b[?25l") // Hide cursor
	ab.WriteString("\x1b[H")    // Go home

	e.drawTitle(&ab)
	e.drawRows(&ab)
	e.drawStatus(&ab)

	if e.mode != modeSaveAs {
		fmt.Fprintf(&ab, "\x1b[%d;%dH", e.cur.Row-e.rowoff+1, e.cur.RenderCol-e.coloff+1)
		ab.WriteString("\x1b[?25h") // Show cursor
	}
	if _, err := e.term.Write(ab.Bytes()); err != nil {
		e.log.Error("refresh failed", "err", err)
	}
}

func (e *Editor) title() string {
	if e.filename == "" {
		return untitled
	}
	t := filepath.Base(e.filename)
	if e.modified {
		t += " *"
	}
	return t
}

func (e *Editor) drawTitle(ab *bytes.Buffer) {
	t := runewidth.Truncate(e.title(), e.screencols, "")
	ab.WriteString(e.styles.bar.Width(e.screencols).Align(lipgloss.Center).Render(t))
	ab.WriteString("\r\n")
}

func (e *Editor) drawRows(ab *bytes.Buffer) {
	g := e.gutter()
	textcols := max(e.screencols-(g+1), 0)
	gutter := e.styles.gutter.Width(g)

	for y := 0; y < e.screenrows; y++ {
		filerow := e.rowoff + y
		row := e.rows.Get(filerow)
		if row == nil {
			ab.WriteString(gutter.Render(""))
			ab.WriteString("\x1b[0K\r\n")
			continue
		}
		ab.WriteString(gutter.Render(strconv.Itoa(filerow + 1)))
		ab.WriteByte(' ')
		start := min(e.coloff, len(row.render))
		end := min(start+textcols, len(row.render))
		ab.WriteString(safeTermString(row.render[start:end]))
		ab.WriteString("\x1b[0K\r\n")
	}
}

func (e *Editor) statusLine() string {
	if e.mode == modeSaveAs {
		return "Save as: " + e.saveAsName
	}
	return e.statusmsg
}

func (e *Editor) drawStatus(ab *bytes.Buffer) {
	msg := runewidth.Truncate(safeTermString(e.statusLine()), e.screencols, "")
	ab.WriteString(e.styles.bar.Width(e.screencols).Align(lipgloss.Left).Render(msg))
}

// safeTermString replaces control bytes with '?' so they keep their single
// render column and cannot reach the terminal.
func safeTermString(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c < 32 || c == 127 {
			b[i] = '?'
		}
	}
	return string(b)
}
