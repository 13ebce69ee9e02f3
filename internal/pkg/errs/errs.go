// Package errs wraps cockroachdb/errors for stack-carrying wrapping and adds
// sentinel marking that the standard library's errors.Is can see. Handlers
// and the availability gate match marked sentinels with plain errors.Is, so
// Mark must keep the sentinel inside the Unwrap chain.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark ties err to a sentinel. cockroachdb's Mark keeps its reference outside
// the Unwrap chain where only its own Is can match it, so the sentinel is
// attached as a second unwrap branch instead. errors.Is then matches both
// the cause chain and the sentinel.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &marked{cause: err, mark: markErr}
}

type marked struct {
	cause error
	mark  error
}

func (e *marked) Error() string { return e.cause.Error() }

func (e *marked) Unwrap() []error { return []error{e.cause, e.mark} }

func (e *marked) Format(s fmt.State, verb rune) {
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.cause.Error())
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
