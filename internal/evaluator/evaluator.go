package evaluator

import (
	"fmt"
	"math"

	"github.com/karupanerura/arithmetic-syntax/internal/syntax"
	"github.com/karupanerura/arithmetic-syntax/internal/types"
)

// Evaluate computes the integer value of a tree built by syntax.Parse.
func Evaluate(n syntax.Node) (int64, error) {
	switch n := n.(type) {
	case *syntax.NumberExpression:
		v, ok := n.Value()
		if !ok {
			return 0, &types.Error{
				Tag: types.ValueErrorTag,
				Err: fmt.Errorf("number %q at %d has no integer value", n.Number.Text, n.Number.Position),
			}
		}
		return v, nil

	case *syntax.BinaryExpression:
		left, err := Evaluate(n.Left)
		if err != nil {
			return 0, fmt.Errorf("left of operator %q: %w", n.Operator.Text, err)
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return 0, fmt.Errorf("right of operator %q: %w", n.Operator.Text, err)
		}
		return calculate(n.Operator, left, right)

	default:
		return 0, &types.Error{
			Tag: types.TypeErrorTag,
			Err: fmt.Errorf("unknown node type %T", n),
		}
	}
}

func calculate(op syntax.Token, left, right int64) (int64, error) {
	overflow := func() error {
		return &types.Error{
			Tag:   types.ValueErrorTag,
			Err:   fmt.Errorf("integer overflow: %d %s %d", left, op.Text, right),
			Extra: map[string]any{"position": op.Position},
		}
	}

	switch op.Kind {
	case syntax.Plus:
		if (right > 0 && left > math.MaxInt64-right) || (right < 0 && left < math.MinInt64-right) {
			return 0, overflow()
		}
		return left + right, nil

	case syntax.Minus:
		if (right < 0 && left > math.MaxInt64+right) || (right > 0 && left < math.MinInt64+right) {
			return 0, overflow()
		}
		return left - right, nil

	case syntax.Star:
		if left == 0 || right == 0 {
			return 0, nil
		}
		result := left * right
		if result/right != left || (left == -1 && right == math.MinInt64) || (right == -1 && left == math.MinInt64) {
			return 0, overflow()
		}
		return result, nil

	case syntax.Slash:
		if right == 0 {
			return 0, &types.Error{
				Tag:   types.ZeroDivisionErrorTag,
				Err:   fmt.Errorf("division by zero: %d / %d", left, right),
				Extra: map[string]any{"position": op.Position},
			}
		}
		if left == math.MinInt64 && right == -1 {
			return 0, overflow()
		}
		return left / right, nil

	default:
		return 0, &types.Error{
			Tag: types.TypeErrorTag,
			Err: fmt.Errorf("unknown binary operator %q at %d", op.Text, op.Position),
		}
	}
}
