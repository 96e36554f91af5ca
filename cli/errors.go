package cli

import (
	"fmt"
	"strings"
)

// usageError indicates the command line did not match the subcommand's
// positional-argument schema. The action prints the generated usage text
// before returning it.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, a ...any) error {
	return &usageError{msg: fmt.Sprintf(format, a...)}
}

// configError indicates required environment configuration is missing;
// it is reported before any request is issued.
type configError struct {
	missing []string
}

func (e *configError) Error() string {
	return fmt.Sprintf("missing required environment variables: %s", strings.Join(e.missing, ", "))
}

// notFoundError reports an absence the CLI can detect locally, e.g. a
// model with no aggregate evaluation.
type notFoundError struct {
	msg string
}

func (e *notFoundError) Error() string {
	return e.msg
}

func notFoundErrorf(format string, a ...any) error {
	return &notFoundError{msg: fmt.Sprintf(format, a...)}
}
