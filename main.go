package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/errtools/errnogen/internal/cli"
	"github.com/errtools/errnogen/internal/errno"
	"github.com/errtools/errnogen/internal/exitcode"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "errnogen:", err)

	switch {
	case errors.Is(err, errno.ErrMalformedLine), errors.Is(err, errno.ErrBadNumber):
		os.Exit(exitcode.DataErr)
	case errors.Is(err, errno.ErrToolFailed):
		os.Exit(exitcode.Unavailable)
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		os.Exit(exitcode.NoInput)
	case errors.Is(err, cli.ErrDrift):
		os.Exit(1)
	default:
		os.Exit(exitcode.Software)
	}
}
