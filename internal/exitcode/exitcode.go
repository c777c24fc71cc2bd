// Package exitcode provides exit code constants following sysexits.h
// conventions. The invoking build treats any non-zero exit as a hard
// failure.
package exitcode

const (
	// OK indicates successful completion.
	OK = 0

	// Usage indicates a command line usage error.
	Usage = 64

	// DataErr indicates malformed input data, such as an errno line that
	// does not split into name, number, and message.
	DataErr = 65

	// NoInput indicates an input file that is missing or unreadable.
	NoInput = 66

	// Unavailable indicates the enumeration tool could not be run.
	Unavailable = 69

	// Software indicates an internal software error.
	Software = 70
)
