package syntax

import (
	"log"
	"os"
	"strconv"

	"github.com/k0kubun/pp"
	"github.com/samber/lo"
)

const (
	termPrecedence uint8 = iota + 1
	factorPrecedence
)

var binaryOperatorPrecedenceMap = map[Kind]uint8{
	Plus:  termPrecedence,
	Minus: termPrecedence,
	Star:  factorPrecedence,
	Slash: factorPrecedence,
}

var parserDebugLog = false

func init() {
	if v, err := strconv.ParseBool(os.Getenv("ARITHMETIC_SYNTAX_DEBUG")); v && err == nil {
		parserDebugLog = true
	}
}

type Parser struct {
	source string
	tokens []Token
	index  int
	debug  bool
}

// NewParser tokenizes source eagerly. Whitespace and Bad tokens are dropped;
// the token list always ends with the EndOfFile sentinel.
func NewParser(source string) *Parser {
	tokens := lo.Filter(Tokenize(source), func(t Token, _ int) bool {
		return t.Kind != Whitespace && t.Kind != Bad
	})
	return &Parser{source: source, tokens: tokens, debug: parserDebugLog}
}

func Parse(source string) (Node, error) {
	return NewParser(source).ParseExpression()
}

func ParseWithDebugOutput(source string) (Node, error) {
	p := NewParser(source)
	p.debug = true
	return p.ParseExpression()
}

// Tokens returns the filtered token list the parser works on.
func (p *Parser) Tokens() []Token {
	return p.tokens
}

// Peek looks offset tokens ahead of the cursor, never past EndOfFile.
func (p *Parser) Peek(offset int) Token {
	i := p.index + offset
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	if i < 0 {
		return p.tokens[0]
	}
	return p.tokens[i]
}

func (p *Parser) current() Token {
	return p.Peek(0)
}

func (p *Parser) next() Token {
	tok := p.current()
	if p.index < len(p.tokens)-1 {
		p.index++
	}
	return tok
}

func (p *Parser) ParseExpression() (Node, error) {
	if p.debug {
		pp.Println(p.source)
		pp.Println(p.tokens)
	}
	if p.current().Kind == EndOfFile {
		return nil, &Error{Kind: MissingExpression, Token: p.current()}
	}

	n, err := p.parseExpression()
	if err != nil {
		if p.debug {
			log.Println("parse error: ", err)
		}
		return nil, err
	}
	if tok := p.current(); tok.Kind != EndOfFile {
		if p.debug {
			log.Println("not consumed token: ", tok)
		}
		return nil, &Error{Kind: TrailingInput, Token: tok, Expected: []Kind{EndOfFile}}
	}

	if p.debug {
		pp.Println(n)
		log.Println(SExpr(n))
	}
	return n, nil
}

func (p *Parser) parseExpression() (Node, error) {
	return p.parseTerm()
}

func (p *Parser) parseTerm() (Node, error) {
	return p.parseBinary(termPrecedence, p.parseFactor)
}

func (p *Parser) parseFactor() (Node, error) {
	return p.parseBinary(factorPrecedence, p.parsePrimary)
}

// parseBinary folds operators of the given precedence to the left.
func (p *Parser) parseBinary(prec uint8, operand func() (Node, error)) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for k := p.current().Kind; k.IsOperator() && binaryOperatorPrecedenceMap[k] == prec; k = p.current().Kind {
		op := p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpression{Left: left, Operator: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parsePrimary() (Node, error) {
	tok := p.current()
	switch tok.Kind {
	case Number:
		if _, ok := tok.Int(); !ok {
			return nil, &Error{Kind: NumericOverflow, Token: tok}
		}
		p.next()
		return &NumberExpression{Number: tok}, nil

	case OpenParen:
		p.next()
		if p.debug {
			log.Println("open paren at ", tok.Position)
		}
		n, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if closeTok := p.current(); closeTok.Kind != CloseParen {
			return nil, &Error{Kind: UnmatchedParenthesis, Token: closeTok, Expected: []Kind{CloseParen}}
		}
		p.next()
		return n, nil

	case EndOfFile:
		return nil, &Error{Kind: MissingExpression, Token: tok, Expected: []Kind{Number, OpenParen}}

	default:
		return nil, &Error{Kind: UnexpectedToken, Token: tok, Expected: []Kind{Number, OpenParen}}
	}
}
