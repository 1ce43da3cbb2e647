package syntax

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

const eofText = "\x00"

type Lexer struct {
	source string
	index  int
}

func NewLexer(source string) *Lexer {
	return &Lexer{source: source}
}

// Tokenize returns every token of source, terminated by a single EndOfFile token.
func Tokenize(source string) []Token {
	return NewLexer(source).All()
}

// All drains the lexer. Calling it again returns only the EndOfFile token.
func (l *Lexer) All() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == EndOfFile {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() Token {
	if l.index >= len(l.source) {
		return Token{Kind: EndOfFile, Position: len(l.source), Text: eofText}
	}

	begin := l.index
	c := l.source[l.index]
	switch {
	case isDigit(c):
		for l.index < len(l.source) && isDigit(l.source[l.index]) {
			l.index++
		}
		text := l.source[begin:l.index]
		tok := Token{Kind: Number, Position: begin, Text: text}
		// out of range literals keep no value, the parser reports them
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			tok.Value = IntValue(v)
		}
		return tok

	case l.isSpaceAt(l.index):
		for l.index < len(l.source) && l.isSpaceAt(l.index) {
			_, size := utf8.DecodeRuneInString(l.source[l.index:])
			l.index += size
		}
		return Token{Kind: Whitespace, Position: begin, Text: l.source[begin:l.index]}
	}

	if kind, ok := singleCharKinds[c]; ok {
		l.index++
		return Token{Kind: kind, Position: begin, Text: l.source[begin:l.index]}
	}

	_, size := utf8.DecodeRuneInString(l.source[l.index:])
	l.index += size
	return Token{Kind: Bad, Position: begin, Text: l.source[begin:l.index]}
}

func (l *Lexer) isSpaceAt(i int) bool {
	r, _ := utf8.DecodeRuneInString(l.source[i:])
	return r != utf8.RuneError && unicode.IsSpace(r)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
