package syntax

import (
	"fmt"
	"io"
	"strings"
)

// FormatTokens writes "<kind> <text>" for each token up to the first EndOfFile.
func FormatTokens(w io.Writer, tokens []Token) error {
	for _, tok := range tokens {
		if tok.Kind == EndOfFile {
			return nil
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", tok.Kind, tok.Text); err != nil {
			return err
		}
	}
	return nil
}

// Format renders n as infix source with the fewest parentheses that parse
// back to the same tree.
func Format(n Node) string {
	var b strings.Builder
	writeInfix(&b, n)
	return b.String()
}

func writeInfix(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *NumberExpression:
		b.WriteString(n.Number.Text)

	case *BinaryExpression:
		prec := binaryOperatorPrecedenceMap[n.Operator.Kind]
		writeOperand(b, n.Left, precedenceOf(n.Left) < prec)
		b.WriteByte(' ')
		b.WriteString(n.Operator.Text)
		b.WriteByte(' ')
		writeOperand(b, n.Right, precedenceOf(n.Right) <= prec)

	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}

func writeOperand(b *strings.Builder, n Node, paren bool) {
	if paren {
		b.WriteByte('(')
		writeInfix(b, n)
		b.WriteByte(')')
		return
	}
	writeInfix(b, n)
}

func precedenceOf(n Node) uint8 {
	if bin, ok := n.(*BinaryExpression); ok {
		return binaryOperatorPrecedenceMap[bin.Operator.Kind]
	}
	return ^uint8(0)
}

// SExpr renders n as a prefix s-expression, e.g. (+ 1 (* 2 3)).
func SExpr(n Node) string {
	if n == nil {
		return "nil"
	}

	switch n := n.(type) {
	case *NumberExpression:
		return n.Number.Text

	case *BinaryExpression:
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(n.Operator.Text)
		b.WriteByte(' ')
		b.WriteString(SExpr(n.Left))
		b.WriteByte(' ')
		b.WriteString(SExpr(n.Right))
		b.WriteByte(')')
		return b.String()

	default:
		panic(fmt.Sprintf("unknown node type %T", n))
	}
}
