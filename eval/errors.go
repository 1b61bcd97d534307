package eval

import (
	"errors"
	"fmt"

	"github.com/npillmayer/slang/syntax"
)

// Error categories of evaluation.
var (
	ErrUnknownIdent   = errors.New("unknown identifier")
	ErrType           = errors.New("type error")
	ErrOverflow       = errors.New("numeric overflow")
	ErrArity          = errors.New("wrong number of arguments")
	ErrNotCallable    = errors.New("not callable")
	ErrUnexpectedNode = errors.New("unexpected node")
)

// Error is an evaluation error. It wraps an error category and carries the
// node which failed to evaluate.
type Error struct {
	Err  error       // category, one of the ErrXXX sentinels
	Node syntax.Node // offending node, may be nil
	Msg  string
}

func (e *Error) Error() string {
	if e.Node == nil {
		return fmt.Sprintf("%v: %s", e.Err, e.Msg)
	}
	return fmt.Sprintf("%v: %s, in %s", e.Err, e.Msg, syntax.Print(e.Node))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// failf creates an evaluation error and traces it.
func failf(category error, n syntax.Node, format string, args ...interface{}) *Error {
	err := &Error{
		Err:  category,
		Node: n,
		Msg:  fmt.Sprintf(format, args...),
	}
	tracer().Errorf("%v", err)
	return err
}
