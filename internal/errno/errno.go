// Package errno parses the host system's error-number table and renders the
// generated source fragments consumed as errnos.inc.
package errno

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors for errno package.
var (
	// ErrMalformedLine indicates a line that does not split into name,
	// number, and message.
	ErrMalformedLine = errors.New("malformed errno line")

	// ErrBadNumber indicates a second field that is not a non-negative
	// integer.
	ErrBadNumber = errors.New("invalid errno number")
)

// Entry is one row of the error table: a symbolic name, its numeric value,
// and the human-readable message reported by the enumeration tool.
type Entry struct {
	Number  int
	Name    string
	Message string
}

// Parse splits the raw tool output into entries sorted ascending by number.
// Each line must look like "<name> <number> <message...>"; only the first
// two spaces delimit fields, so the message keeps any further spaces.
// Entries with equal numbers keep their input order.
func Parse(raw string) ([]Entry, error) {
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return nil, nil
	}

	var entries []Entry
	for i, line := range strings.Split(raw, "\n") {
		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, i+1, line)
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadNumber, i+1, parts[1])
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: line %d: %d", ErrBadNumber, i+1, n)
		}
		entries = append(entries, Entry{Number: n, Name: parts[0], Message: parts[2]})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Number, b.Number)
	})
	return entries, nil
}
