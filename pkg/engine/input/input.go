package input

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// readEscape resolves an escape sequence after a 0x1b byte. Arrow
// keys arrive as CSI (ESC [) or SS3 (ESC O) sequences; anything else
// is reported as a plain escape press.
func readEscape() (string, error) {
	b2, err := readByte()
	if err != nil {
		return "", err
	}

	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := readByte()
	if err != nil {
		return "", err
	}

	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Unknown sequence, discard it
	return "", nil
}

// ReadKey blocks for a single keypress in raw mode and returns its
// code: printable keys as themselves (lowercased), arrow keys as
// "arrow_*", escape as "escape", Ctrl+C as "ctrl_c". Every command in
// the game is a single key, so there is no line editing.
func ReadKey() (string, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return readEscape()
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 >= 32 && b1 < 127:
		return strings.ToLower(string(rune(b1))), nil
	}

	return "", nil
}
