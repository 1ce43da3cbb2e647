package evaluator_test

import (
	"errors"
	"testing"

	"github.com/karupanerura/arithmetic-syntax/internal/evaluator"
	"github.com/karupanerura/arithmetic-syntax/internal/syntax"
	"github.com/karupanerura/arithmetic-syntax/internal/types"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		source      string
		expected    int64
		expectedTag types.ErrorTag
	}{
		{source: "1", expected: 1},
		{source: "1+2*3", expected: 7},
		{source: "(1+2)*3", expected: 9},
		{source: "10-4-3", expected: 3},
		{source: "100/10/5", expected: 2},
		{source: "7/2", expected: 3},
		{source: "1-8/3", expected: -1},
		{source: "(1-8)/3", expected: -2},
		{source: "0*9223372036854775807", expected: 0},
		{source: "0-9223372036854775807-1", expected: -9223372036854775807 - 1},
		{source: "1/0", expectedTag: types.ZeroDivisionErrorTag},
		{source: "5/(3-3)", expectedTag: types.ZeroDivisionErrorTag},
		{source: "9223372036854775807+1", expectedTag: types.ValueErrorTag},
		{source: "0-9223372036854775807-2", expectedTag: types.ValueErrorTag},
		{source: "4611686018427387904*2", expectedTag: types.ValueErrorTag},
		{source: "(0-9223372036854775807-1)/(0-1)", expectedTag: types.ValueErrorTag},
		{source: "(0-9223372036854775807-1)*(0-1)", expectedTag: types.ValueErrorTag},
	} {
		tt := tt
		t.Run(tt.source, func(t *testing.T) {
			t.Parallel()

			n, err := syntax.Parse(tt.source)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}

			actual, err := evaluator.Evaluate(n)
			if tt.expectedTag != "" {
				var typedErr *types.Error
				if !errors.As(err, &typedErr) {
					t.Fatalf("expected *types.Error, got %v", err)
				}
				if typedErr.Tag != tt.expectedTag {
					t.Errorf("expected tag %s, got %s", tt.expectedTag, typedErr.Tag)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected evaluate error: %v", err)
			}
			if actual != tt.expected {
				t.Errorf("want %d, got %d", tt.expected, actual)
			}
		})
	}
}

func TestEvaluateRejectsNumberWithoutValue(t *testing.T) {
	t.Parallel()

	n := &syntax.NumberExpression{Number: syntax.Token{Kind: syntax.Number, Text: "99999999999999999999"}}
	_, err := evaluator.Evaluate(n)

	var typedErr *types.Error
	if !errors.As(err, &typedErr) || typedErr.Tag != types.ValueErrorTag {
		t.Errorf("expected ValueError, got %v", err)
	}
}
