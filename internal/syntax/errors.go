package syntax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/karupanerura/arithmetic-syntax/internal/types"
	"github.com/samber/lo"
)

type ErrorKind string

const (
	MissingExpression    ErrorKind = "MissingExpression"
	UnmatchedParenthesis ErrorKind = "UnmatchedParenthesis"
	UnexpectedToken      ErrorKind = "UnexpectedToken"
	TrailingInput        ErrorKind = "TrailingInput"
	NumericOverflow      ErrorKind = "NumericOverflow"
)

var (
	ErrMissingExpression    = errors.New("missing expression")
	ErrUnmatchedParenthesis = errors.New("expected closing parenthesis")
	ErrUnexpectedToken      = errors.New("unexpected token, expected expression")
	ErrTrailingInput        = errors.New("unexpected token at end")
	ErrNumericOverflow      = errors.New("numeric literal out of range")
)

var errorKindSentinels = map[ErrorKind]error{
	MissingExpression:    ErrMissingExpression,
	UnmatchedParenthesis: ErrUnmatchedParenthesis,
	UnexpectedToken:      ErrUnexpectedToken,
	TrailingInput:        ErrTrailingInput,
	NumericOverflow:      ErrNumericOverflow,
}

// Error is a failure to turn a token stream into a tree. Token is the
// offending token, Expected lists the kinds that would have been accepted.
type Error struct {
	Kind     ErrorKind
	Token    Token
	Expected []Kind
}

var _ types.Exception = (*Error)(nil)

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Unwrap().Error())
	if len(e.Expected) != 0 {
		b.WriteString(" (expected ")
		b.WriteString(strings.Join(kindStrings(e.Expected), " or "))
		b.WriteString(")")
	}
	if e.Token.Kind == EndOfFile {
		fmt.Fprintf(&b, " at end of input (position %d)", e.Token.Position)
	} else {
		fmt.Fprintf(&b, " at position %d: %s", e.Token.Position, strconv.Quote(e.Token.Text))
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if err, ok := errorKindSentinels[e.Kind]; ok {
		return err
	}
	return fmt.Errorf("syntax error %s", e.Kind)
}

func (e *Error) Tag() types.ErrorTag {
	if e.Kind == NumericOverflow {
		return types.ValueErrorTag
	}
	return types.SyntaxErrorTag
}

func (e *Error) Exception() any {
	o := map[string]any{
		"tags":     []any{e.Tag(), e.Kind},
		"message":  e.Error(),
		"position": e.Token.Position,
		"text":     e.Token.Text,
		"token":    e.Token.Kind.String(),
	}
	if len(e.Expected) != 0 {
		o["expected"] = kindStrings(e.Expected)
	}
	return o
}

func kindStrings(kinds []Kind) []string {
	return lo.Map(kinds, func(k Kind, _ int) string {
		return k.String()
	})
}
