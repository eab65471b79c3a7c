package numed

import (
	"strings"
	"testing"
)

// frame redraws e on a 20x6 terminal and returns the screen lines.
func frame(t *testing.T, e *Editor, ft *fakeTerminal) []string {
	t.Helper()
	e.OnResize(20, 6)
	ft.out.Reset()
	e.refreshScreen()
	lines := strings.Split(ft.out.String(), "\r\n")
	if len(lines) != 6 {
		t.Fatalf("frame has %d lines, want 6: %q", len(lines), ft.out.String())
	}
	return lines
}

func titleOf(t *testing.T, line string) string {
	t.Helper()
	title, ok := strings.CutPrefix(line, "\x1b[?25l\x1b[H")
	if !ok {
		t.Fatalf("frame does not start by hiding the cursor: %q", line)
	}
	if len(title) != 20 {
		t.Fatalf("title bar %q is %d columns wide, want 20", title, len(title))
	}
	return strings.TrimSpace(title)
}

func TestRefreshScreen(t *testing.T) {
	e, ft, _ := newTestEditor(t, "abc", "\tx")
	lines := frame(t, e, ft)
	if got := titleOf(t, lines[0]); got != "Text Editor" {
		t.Fatalf("title %q", got)
	}
	want := []string{
		" 1 abc\x1b[0K",
		" 2     x\x1b[0K",
		"  \x1b[0K",
		"  \x1b[0K",
		"Ctrl-Q - Quit | Ctrl\x1b[2;4H\x1b[?25h",
	}
	for i, w := range want {
		if lines[i+1] != w {
			t.Errorf("line %d = %q, want %q", i+1, lines[i+1], w)
		}
	}
}

func TestRefreshScreenTitle(t *testing.T) {
	e, ft, _ := newTestEditor(t, "abc")
	e.filename = "dir/notes.txt"
	if got := titleOf(t, frame(t, e, ft)[0]); got != "notes.txt" {
		t.Fatalf("title %q", got)
	}
	e.InsertChar('x')
	if got := titleOf(t, frame(t, e, ft)[0]); got != "notes.txt *" {
		t.Fatalf("title %q", got)
	}
}

func TestRefreshScreenScrollsHorizontally(t *testing.T) {
	e, ft, _ := newTestEditor(t, "0123456789abcdefghijklmnopqrstuvwxyz")
	e.End()
	lines := frame(t, e, ft)
	if got, want := lines[1], " 1 lmnopqrstuvwxyz\x1b[0K"; got != want {
		t.Fatalf("line 1 = %q, want %q", got, want)
	}
	if !strings.HasSuffix(lines[5], "\x1b[2;19H\x1b[?25h") {
		t.Fatalf("cursor not placed at column 19: %q", lines[5])
	}
}

func TestRefreshScreenWideGutter(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = "x"
	}
	e, ft, _ := newTestEditor(t, lines...)
	screen := frame(t, e, ft)
	if got, want := screen[1], "  1 x\x1b[0K"; got != want {
		t.Fatalf("line 1 = %q, want %q", got, want)
	}
	if !strings.HasSuffix(screen[5], "\x1b[2;5H\x1b[?25h") {
		t.Fatalf("cursor not placed after the 3-wide gutter: %q", screen[5])
	}
}

func TestRefreshScreenHidesControlBytes(t *testing.T) {
	e, ft, _ := newTestEditor(t, "a\x01b\x1b")
	if got, want := frame(t, e, ft)[1], " 1 a?b?\x1b[0K"; got != want {
		t.Fatalf("line 1 = %q, want %q", got, want)
	}
}

func TestRefreshScreenSaveAsPrompt(t *testing.T) {
	e, ft, _ := newTestEditor(t, "abc")
	e.mode = modeSaveAs
	e.saveAsName = "foo"
	lines := frame(t, e, ft)
	if strings.Contains(ft.out.String(), "\x1b[?25h") {
		t.Fatalf("cursor shown while the prompt is open")
	}
	if got := strings.TrimRight(lines[5], " "); got != "Save as: foo" {
		t.Fatalf("status line %q", got)
	}
}

func TestRefreshScreenMaterializesVirtualRow(t *testing.T) {
	e, ft, _ := newTestEditor(t, "abc")
	e.cur = Cursor{Row: 2, Col: 3}
	lines := frame(t, e, ft)
	if e.rows.Len() != 2 || !e.FileWasModified() {
		t.Fatalf("%d rows, modified %v; want the virtual row appended", e.rows.Len(), e.FileWasModified())
	}
	if got, want := lines[2], " 2 \x1b[0K"; got != want {
		t.Fatalf("line 2 = %q, want %q", got, want)
	}
}

func TestRefreshScreenKeepsVirtualRowAfterEmptyLastRow(t *testing.T) {
	e, ft, _ := newTestEditor(t, "abc", "")
	e.cur = Cursor{Row: 3, Col: 3}
	lines := frame(t, e, ft)
	if e.rows.Len() != 2 || e.FileWasModified() {
		t.Fatalf("%d rows, modified %v; want no row appended", e.rows.Len(), e.FileWasModified())
	}
	if got, want := lines[3], "  \x1b[0K"; got != want {
		t.Fatalf("line 3 = %q, want %q", got, want)
	}
	if !strings.HasSuffix(lines[5], "\x1b[4;4H\x1b[?25h") {
		t.Fatalf("cursor not on the virtual row: %q", lines[5])
	}
}
