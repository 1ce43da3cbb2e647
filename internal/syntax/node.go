package syntax

// Node is either *NumberExpression or *BinaryExpression.
type Node interface {
	Kind() Kind
	Tokens() []Token
	node()
}

type NumberExpression struct {
	Number Token
}

var _ Node = (*NumberExpression)(nil)

func (n *NumberExpression) Kind() Kind {
	return NumberExpressionKind
}

func (n *NumberExpression) Tokens() []Token {
	return []Token{n.Number}
}

// Value returns the literal's integer; false when it did not fit in int64.
func (n *NumberExpression) Value() (int64, bool) {
	return n.Number.Int()
}

func (*NumberExpression) node() {}

type BinaryExpression struct {
	Left     Node
	Operator Token
	Right    Node
}

var _ Node = (*BinaryExpression)(nil)

func (n *BinaryExpression) Kind() Kind {
	return BinaryExpressionKind
}

// Tokens returns the leaf tokens of the subtree in source order.
func (n *BinaryExpression) Tokens() []Token {
	tokens := n.Left.Tokens()
	tokens = append(tokens, n.Operator)
	return append(tokens, n.Right.Tokens()...)
}

func (*BinaryExpression) node() {}
