// Package numed is a minimal full-screen terminal line editor with a
// line-numbered gutter, in the tradition of antirez's kilo.
// It emits VT100 escape sequences directly, without depending on ncurses.
package numed

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version is the numed version.
const Version = "0.1.0"

// QuitTimes is how many extra Ctrl-Q presses are needed to quit with unsaved changes.
const QuitTimes = 1

const statusHelp = "Ctrl-Q - Quit | Ctrl-S - Save"

// ErrNoFilename is returned by Save when the document has no filename yet.
var ErrNoFilename = errors.New("no filename")

type mode int

const (
	modeNormal mode = iota
	modeSaveAs
)

// Cursor is a position in the document.
// Col and RenderCol both include the gutter offset.
type Cursor struct {
	Row       int // 1-based, Rows.Len()+1 is the virtual trailing row
	Col       int
	RenderCol int
}

// Editor holds the complete state of an editing session.
type Editor struct {
	rows       *Rows
	cur        Cursor
	rowoff     int
	coloff     int
	screenrows int
	screencols int
	filename   string
	modified   bool
	statusmsg  string
	mode       mode
	saveAsName string
	quitTimes  int

	term   Terminal
	store  FileStore
	styles styles
	log    *slog.Logger
}

type colorProfiler interface {
	ColorProfile() termenv.Profile
}

// New creates an editor that draws on t and persists through store.
// The session starts with a single empty row and no filename.
func New(t Terminal, store FileStore) (*Editor, error) {
	e := &Editor{
		rows:      NewRows(nil),
		quitTimes: QuitTimes,
		term:      t,
		store:     store,
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	e.cur = Cursor{Row: 1, Col: e.gutter() + 1}
	e.cur.RenderCol = e.cur.Col

	renderer := lipgloss.NewRenderer(t)
	profile := termenv.Ascii
	if p, ok := t.(colorProfiler); ok {
		profile = p.ColorProfile()
	}
	renderer.SetColorProfile(profile)
	e.styles = newStyles(renderer)

	cols, rows, err := t.Size()
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	e.OnResize(cols, rows)
	e.SetStatusMessage(statusHelp)
	return e, nil
}

// SetLogger sets the diagnostics logger. Diagnostics are discarded by default.
func (e *Editor) SetLogger(l *slog.Logger) {
	if l != nil {
		e.log = l
	}
}

// Open loads a file into the editor. A file that does not exist leaves the
// editor with a single empty row and no filename.
func (e *Editor) Open(filename string) error {
	lines, err := e.store.Load(filename)
	if errors.Is(err, fs.ErrNotExist) {
		e.log.Info("file does not exist, starting empty", "file", filename)
		e.reset(nil, "")
		return nil
	}
	if err != nil {
		e.log.Error("open failed", "file", filename, "err", err)
		return err
	}
	e.reset(lines, filename)
	e.log.Info("opened", "file", filename, "rows", e.rows.Len())
	return nil
}

func (e *Editor) reset(lines []string, filename string) {
	e.rows = NewRows(lines)
	e.filename = filename
	e.modified = false
	e.rowoff, e.coloff = 0, 0
	e.cur = Cursor{Row: 1, Col: e.gutter() + 1}
	e.cur.RenderCol = e.cur.Col
}

// Save writes the document to its file. On failure the document stays
// modified and the error is shown on the status line.
func (e *Editor) Save() error {
	if e.filename == "" {
		return ErrNoFilename
	}
	lines := e.rows.Lines()
	if err := e.store.Save(e.filename, lines); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		e.log.Error("save failed", "file", e.filename, "err", err)
		return err
	}
	n := 0
	for _, line := range lines {
		n += len(line) + 1
	}
	e.modified = false
	e.SetStatusMessage("%d bytes written on disk", n)
	e.log.Info("saved", "file", e.filename, "bytes", n)
	return nil
}

// SetStatusMessage sets the editor status message.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusmsg = fmt.Sprintf(format, args...)
}

// Filename returns the name of the file being edited, or "" if unset.
func (e *Editor) Filename() string {
	return e.filename
}

// FileWasModified returns true if the document has unsaved changes.
func (e *Editor) FileWasModified() bool {
	return e.modified
}

// Lines returns the raw contents of the document.
func (e *Editor) Lines() []string {
	return e.rows.Lines()
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() Cursor {
	return e.cur
}

// Run is the main editor loop. It draws the screen and processes keys until
// the user quits, or until reading from the terminal fails.
func (e *Editor) Run() error {
	for {
		e.refreshScreen()
		quit, err := e.step()
		if err != nil {
			return err
		}
		if quit {
			// Clear screen on exit
			_, err := e.term.Write([]byte("\x1b[2J\x1b[H"))
			return err
		}
	}
}

// step reads and processes one key. It reports whether the user asked to quit.
func (e *Editor) step() (bool, error) {
	c, err := e.waitByte()
	if err != nil {
		return false, err
	}
	return !e.processKeypress(e.readKey(c)), nil
}

// waitByte blocks until a byte arrives, handling resize notifications while waiting.
func (e *Editor) waitByte() (byte, error) {
	for {
		select {
		case <-e.term.Resized():
			e.handleResize()
		default:
		}
		c, n, err := e.term.ReadOne()
		if err != nil {
			return 0, err
		}
		if n == 1 {
			return c, nil
		}
	}
}
