package syntax

import (
	"github.com/goccy/go-json"
)

func (t Token) MarshalJSON() ([]byte, error) {
	o := map[string]any{
		"kind":     t.Kind.String(),
		"position": t.Position,
		"text":     t.Text,
	}
	if v, ok := t.Int(); ok {
		o["value"] = v
	}
	return json.Marshal(o)
}

func (n *NumberExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"kind":   n.Kind().String(),
		"number": n.Number,
	})
}

func (n *BinaryExpression) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"kind":     n.Kind().String(),
		"left":     n.Left,
		"operator": n.Operator,
		"right":    n.Right,
	})
}
