// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a usage error (bad args, unknown command or flag).
	UserError = 1

	// ParseError indicates a malformed store file.
	ParseError = 2

	// IOError indicates the store file could not be read or written.
	IOError = 3

	// AuthError indicates missing or invalid Google credentials.
	AuthError = 4

	// BackendError indicates a Google Tasks API or network error.
	BackendError = 5
)
