package source

import (
	"errors"
	"fmt"
)

// ErrNoFacts signals that a source answered but the archive came back empty.
// An empty archive is never valid for this dataset, so callers keep the
// previous snapshot.
var ErrNoFacts = errors.New("source returned no facts")

// QueryError wraps a failure from a concrete source with enough context to
// log it usefully.
type QueryError struct {
	Source string
	Op     string
	Err    error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Source, e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// AsQueryError attempts to unwrap an error into a QueryError.
func AsQueryError(err error) (*QueryError, bool) {
	var qErr *QueryError
	if errors.As(err, &qErr) {
		return qErr, true
	}
	return nil, false
}
