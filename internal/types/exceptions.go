package types

import (
	"errors"
	"strings"

	"github.com/samber/lo"
)

type ErrorTag string

const (
	SyntaxErrorTag       ErrorTag = "SyntaxError"
	TypeErrorTag         ErrorTag = "TypeError"
	ValueErrorTag        ErrorTag = "ValueError"
	ZeroDivisionErrorTag ErrorTag = "ZeroDivisionError"
)

// Exception is an error with a structured payload suitable for JSON output.
type Exception interface {
	error
	Exception() any
}

type Error struct {
	Tag   ErrorTag
	Err   error
	Extra map[string]any
}

var _ Exception = (*Error)(nil)

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Tag)
	}

	var b strings.Builder
	b.WriteString(string(e.Tag))
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Exception() any {
	tags := []any{e.Tag}
	for err := errors.Unwrap(error(e)); err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*Error); ok {
			tags = append(tags, e.Tag)
		}
	}

	o := map[string]any{
		"tags": tags,
	}
	if e.Err != nil {
		o["message"] = e.Err.Error()
	}
	if len(e.Extra) != 0 {
		o = lo.Assign(o, e.Extra)
	}
	return o
}

// ExceptionOf returns the payload of the first Exception in err's chain,
// or a plain message payload when there is none.
func ExceptionOf(err error) any {
	var exception Exception
	if errors.As(err, &exception) {
		return exception.Exception()
	}
	return map[string]any{"message": err.Error()}
}
