package rdcparc

import (
	"errors"
	"fmt"
	"strings"
)

type BuildError struct {
	message string
	cause   error
}

func (e *BuildError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, e.message)
	if e.cause != nil {
		fmt.Fprint(&msg, ": ", e.cause)
	}
	return msg.String()
}

func (e *BuildError) Unwrap() error {
	return e.cause
}

func newBuildError(message string, cause error) *BuildError {
	return &BuildError{message: message, cause: cause}
}

var ErrUnknownAccession = errors.New("accession not configured")
