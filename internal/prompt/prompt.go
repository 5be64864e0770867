// Package prompt reads operator input from a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// ErrPasswordMismatch is returned by ConfirmedPassword when the two entries differ.
var ErrPasswordMismatch = errors.New("passwords do not match")

// Text prints label to w and reads one line from reader, trimmed. A final
// line without a newline is still returned.
func Text(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, label+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Password prints label to w and reads a line from stdin without echo.
// The caller should wipe the result when done.
func Password(label string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, label+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// ConfirmedPassword asks twice and fails with ErrPasswordMismatch when the
// entries differ.
func ConfirmedPassword(w io.Writer) ([]byte, error) {
	first, err := Password("Password", w)
	if err != nil {
		return nil, err
	}
	second, err := Password("Password (again)", w)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(second)

	if string(first) != string(second) {
		common.WipeByteArray(first)
		return nil, ErrPasswordMismatch
	}
	return first, nil
}
