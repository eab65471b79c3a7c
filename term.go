package numed

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/muesli/termenv"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNotTTY is returned by OpenTTY when stdin is not a terminal.
var ErrNotTTY = errors.New("not a tty")

// Terminal is the screen and keyboard the editor talks to.
type Terminal interface {
	// ReadOne reads at most one byte. n is 0 if nothing arrived before the
	// read timeout.
	ReadOne() (c byte, n int, err error)
	// Write writes a complete frame.
	Write(p []byte) (int, error)
	// Size returns the terminal size in cells.
	Size() (cols, rows int, err error)
	// Resized delivers a value after the terminal has been resized.
	Resized() <-chan struct{}
}

// TTY is a Terminal on the process' stdin and stdout.
type TTY struct {
	in, out     *os.File
	origTermios unix.Termios
	rawmode     bool
	sigs        chan os.Signal
	resized     chan struct{}
	closeOnce   sync.Once
}

// OpenTTY returns a TTY on stdin and stdout and starts listening for SIGWINCH.
// Resize notifications are coalesced; the editor picks them up between reads.
func OpenTTY() (*TTY, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNotTTY
	}
	t := &TTY{
		in:      os.Stdin,
		out:     os.Stdout,
		sigs:    make(chan os.Signal, 1),
		resized: make(chan struct{}, 1),
	}
	signal.Notify(t.sigs, syscall.SIGWINCH)
	go func() {
		for range t.sigs {
			select {
			case t.resized <- struct{}{}:
			default:
			}
		}
	}()
	return t, nil
}

// EnableRawMode puts the terminal in raw mode and switches to the
// alternate screen buffer. Reads time out after a tenth of a second.
func (t *TTY) EnableRawMode() error {
	if t.rawmode {
		return nil
	}
	fd := int(t.in.Fd())
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	t.origTermios = *orig

	raw := *orig
	// Input modes
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// Output modes
	raw.Oflag &^= unix.OPOST
	// Control modes
	raw.Cflag |= unix.CS8
	// Local modes
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// Control chars
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("set termios: %w", err)
	}
	t.rawmode = true
	t.out.WriteString("\x1b[?1049h")
	return nil
}

// DisableRawMode leaves the alternate screen and restores the original terminal mode.
func (t *TTY) DisableRawMode() {
	if t.rawmode {
		t.out.WriteString("\x1b[?1049l")
		unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, &t.origTermios)
		t.rawmode = false
	}
}

// Close stops resize notifications and restores the terminal.
func (t *TTY) Close() error {
	t.closeOnce.Do(func() {
		signal.Stop(t.sigs)
		close(t.sigs)
		t.DisableRawMode()
	})
	return nil
}

// ReadOne reads a single byte from stdin.
func (t *TTY) ReadOne() (byte, int, error) {
	var buf [1]byte
	n, err := unix.Read(int(t.in.Fd()), buf[:])
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EINTR) {
			return 0, 0, nil
		}
		return 0, 0, err
	}
	return buf[0], n, nil
}

// Write writes p to stdout.
func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the size of the terminal, or 80x24 if it cannot be determined.
func (t *TTY) Size() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(t.out.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return 80, 24, nil
	}
	return int(ws.Col), int(ws.Row), nil
}

// Resized returns the resize notification channel.
func (t *TTY) Resized() <-chan struct{} {
	return t.resized
}

// ColorProfile returns the color profile supported by the terminal.
func (t *TTY) ColorProfile() termenv.Profile {
	return termenv.NewOutput(t.out).EnvColorProfile()
}
