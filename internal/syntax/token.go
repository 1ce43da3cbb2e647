package syntax

import (
	"fmt"
	"strconv"
)

type Kind int

const (
	Number Kind = iota
	Whitespace
	Plus
	Minus
	Star
	Slash
	OpenParen
	CloseParen
	Bad
	EndOfFile

	NumberExpressionKind
	BinaryExpressionKind
)

// kind names as printed by the token REPL
var kindNames = map[Kind]string{
	Number:               "NumberToken",
	Whitespace:           "WhiteSpaceToken",
	Plus:                 "PlusToken",
	Minus:                "MinusToken",
	Star:                 "StarToken",
	Slash:                "SlashToken",
	OpenParen:            "OpenParanthesisToken",
	CloseParen:           "CloseParanthesisToken",
	Bad:                  "BadToken",
	EndOfFile:            "EOFToken",
	NumberExpressionKind: "NumberExpression",
	BinaryExpressionKind: "BinaryExpression",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsOperator reports whether k is one of the four arithmetic operators.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

var singleCharKinds = map[byte]Kind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'(': OpenParen,
	')': CloseParen,
}

// Value is the decoded literal of a token. A nil Value means the token has none.
type Value interface {
	isValue()
}

type IntValue int64

func (IntValue) isValue() {}

type Token struct {
	Kind     Kind
	Position int
	Text     string
	Value    Value
}

// Int returns the integer literal of a Number token.
func (t Token) Int() (int64, bool) {
	v, ok := t.Value.(IntValue)
	return int64(v), ok
}

// End returns the offset just past the token text.
func (t Token) End() int {
	if t.Kind == EndOfFile {
		return t.Position
	}
	return t.Position + len(t.Text)
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s", t.Kind, t.Text)
}
