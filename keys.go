package numed

import "errors"

// Key constants
const (
	ctrlA        = 1
	ctrlB        = 2
	ctrlC        = 3
	ctrlD        = 4
	ctrlH        = 8
	keyTab       = 9
	keyLineFeed  = 10
	ctrlL        = 12
	keyEnter     = 13
	ctrlQ        = 17
	ctrlS        = 19
	keyEsc       = 27
	keyBackspace = 127

	arrowLeft  = 1000
	arrowRight = 1001
	arrowUp    = 1002
	arrowDown  = 1003
	delKey     = 1004
	homeKey    = 1005
	endKey     = 1006
	pageUp     = 1007
	pageDown   = 1008
)

// errTruncated means an escape sequence ended before it was complete.
var errTruncated = errors.New("truncated escape sequence")

// next reads one more byte of an escape sequence, without waiting for more
// than a single read timeout.
func (e *Editor) next() (byte, error) {
	c, n, err := e.term.ReadOne()
	if err != nil || n != 1 {
		return 0, errTruncated
	}
	return c, nil
}

// readKey turns c, and for escape sequences the bytes following it, into a key.
// Incomplete or unknown sequences are returned as a bare keyEsc.
func (e *Editor) readKey(c byte) int {
	if c != keyEsc {
		return int(c)
	}
	k, err := e.readEscape()
	if err != nil {
		e.log.Debug("escape sequence dropped", "err", err)
		return keyEsc
	}
	return k
}

func (e *Editor) readEscape() (int, error) {
	var seq [3]byte
	var err error
	for i := range 2 {
		if seq[i], err = e.next(); err != nil {
			return keyEsc, err
		}
	}
	if seq[0] != '[' {
		return keyEsc, nil
	}
	if seq[1] >= '0' && seq[1] <= '9' {
		if seq[2], err = e.next(); err != nil {
			return keyEsc, err
		}
		if seq[2] != '~' {
			return keyEsc, nil
		}
		switch seq[1] {
		case '3':
			return delKey, nil
		case '5':
			return pageUp, nil
		case '6':
			return pageDown, nil
		case '1', '7':
			return homeKey, nil
		case '4', '8':
			return endKey, nil
		}
		return keyEsc, nil
	}
	switch seq[1] {
	case 'A':
		return arrowUp, nil
	case 'B':
		return arrowDown, nil
	case 'C':
		return arrowRight, nil
	case 'D':
		return arrowLeft, nil
	case 'H':
		return homeKey, nil
	case 'F':
		return endKey, nil
	}
	return keyEsc, nil
}

func isControl(c int) bool {
	return c < 32 || c == keyBackspace
}
