package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal calls.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// readLine reads one line and trims surrounding whitespace. A final line
// without a newline is returned as-is; EOF on an empty line is an error.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask prints "prompt: " and reads one line.
func Ask(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", prompt); err != nil {
		return "", err
	}
	return readLine(r)
}

// AskDefault shows current in brackets; a blank answer keeps it.
func AskDefault(r *bufio.Reader, w io.Writer, prompt, current string) (string, error) {
	if current == "" {
		return Ask(r, w, prompt)
	}
	if _, err := fmt.Fprintf(w, "%s [%s]: ", prompt, current); err != nil {
		return "", err
	}
	v, err := readLine(r)
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// AskSecret reads without echo when fd is a terminal, and from r otherwise.
func AskSecret(r *bufio.Reader, w io.Writer, prompt string, fd int) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", prompt); err != nil {
		return "", err
	}
	if fd < 0 || !isTerminal(fd) {
		line, err := r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// Confirm asks a yes/no question; only "y" or "yes" confirm.
func Confirm(r *bufio.Reader, w io.Writer, prompt string) bool {
	ans, err := Ask(r, w, prompt+" [y/N]")
	if err != nil {
		return false
	}
	switch strings.ToLower(ans) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
