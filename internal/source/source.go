// Package source reads the text to highlight from files and standard input,
// and watches files for changes.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinName is the argument that selects standard input.
const StdinName = "-"

// ReadFile reads a whole file as text.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// ReadInput reads everything from r.
func ReadInput(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// TextFromArgs joins args with spaces, or reads stdin when args is empty or
// is the single argument "-".
func TextFromArgs(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == StdinName) {
		return ReadInput(stdin)
	}
	return strings.Join(args, " "), nil
}
