package cli

import (
	"errors"

	"github.com/yaklabco/textree/pkg/tree"
)

// Exit codes for textree.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failed run, including path resolution
	// failures.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates input or output I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to classify failures for exit codes. Wrap with
// errors.Join so the original cause stays in the chain.
var (
	ErrUsage  = errors.New("invalid usage")
	ErrConfig = errors.New("configuration error")
	ErrIO     = errors.New("i/o error")
)

// ExitCodeForError maps an error returned by command execution to a
// process exit code.
func ExitCodeForError(err error) int {
	var outOfRange *tree.OutOfRangeError
	var notFound *tree.NotFoundError
	var badComponent *tree.BadComponentError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &outOfRange), errors.As(err, &notFound), errors.As(err, &badComponent):
		return ExitFailure
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitFailure
	}
}
