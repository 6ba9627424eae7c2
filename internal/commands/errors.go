package commands

import (
	"errors"
	"fmt"
	"io"

	"todos/internal/exitcode"
	"todos/internal/remote"
	"todos/internal/todo"
)

// ReportStoreError prints a store load/save failure and returns its exit code.
func ReportStoreError(errOut io.Writer, err error) int {
	var parseErr *todo.ParseError
	var ioErr *todo.IOError
	switch {
	case errors.As(err, &parseErr):
		fmt.Fprintf(errOut, "error: parse error: %v\n", err)
		return exitcode.ParseError
	case errors.As(err, &ioErr):
		fmt.Fprintf(errOut, "error: io error: %v\n", err)
		return exitcode.IOError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

// reportRemoteError prints a remote backend failure and returns its exit code.
func reportRemoteError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, remote.ErrAuth):
		fmt.Fprintf(errOut, "error: auth error: %v\n", err)
		return exitcode.AuthError
	case errors.Is(err, remote.ErrNotFound), errors.Is(err, remote.ErrAmbiguous):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
