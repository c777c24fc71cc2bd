package errno

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// DefaultTool is the enumeration tool run when no override is given.
// It is the errno utility from moreutils.
const DefaultTool = "errno"

// ErrToolFailed indicates the enumeration tool was missing or exited
// non-zero.
var ErrToolFailed = errors.New("errno tool failed")

// Source supplies the raw line-oriented output of the error enumeration
// tool. It exists so parsing and rendering can be tested against fixture
// text instead of the live host table.
type Source interface {
	Raw(ctx context.Context) (string, error)
}

// ToolSource runs the enumeration tool with -l and buffers its whole output
// before returning.
type ToolSource struct {
	Path string
}

// Raw executes the tool. On a non-zero exit the tool's stderr is included in
// the returned error.
func (s ToolSource) Raw(ctx context.Context) (string, error) {
	path := s.Path
	if path == "" {
		path = DefaultTool
	}
	out, err := exec.CommandContext(ctx, path, "-l").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("%w: %s -l: %v: %s", ErrToolFailed, path, err, exitErr.Stderr)
		}
		return "", fmt.Errorf("%w: %s -l: %v", ErrToolFailed, path, err)
	}
	return string(out), nil
}

// FileSource reads raw lines from a file.
type FileSource struct {
	Path string
}

// Raw reads the whole file.
func (s FileSource) Raw(context.Context) (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

// ReaderSource wraps an io.Reader. Used for stdin and in tests.
type ReaderSource struct {
	R io.Reader
}

// Raw reads the reader to EOF.
func (s ReaderSource) Raw(context.Context) (string, error) {
	data, err := io.ReadAll(s.R)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
