package snippet

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is reported when the snippet file cannot be
	// opened or read
	ErrSourceUnavailable = errors.New("the snippet source is unavailable")
	// ErrUnterminatedBlock is reported when the snippet source ends while a
	// snippet is still open
	ErrUnterminatedBlock = errors.New("the snippet has no end marker")
	// ErrDuplicateTitle is reported when a snippet has the same title as
	// one already held
	ErrDuplicateTitle = errors.New("duplicate snippet title")
	// ErrUnrenderable is reported when a snippet is added which would not
	// be read back unchanged after being written out
	ErrUnrenderable = errors.New("the snippet cannot be written out safely")
)

// ParseError records a problem found while reading a snippet source
type ParseError struct {
	Source string // the name of the source, if known
	Line   int    // the line at which the problem was found
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
