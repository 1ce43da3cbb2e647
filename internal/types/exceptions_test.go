package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/karupanerura/arithmetic-syntax/internal/types"
)

func TestErrorException(t *testing.T) {
	t.Parallel()

	inner := &types.Error{Tag: types.ZeroDivisionErrorTag, Err: errors.New("division by zero")}
	outer := &types.Error{
		Tag:   types.ValueErrorTag,
		Err:   fmt.Errorf("right of operator: %w", inner),
		Extra: map[string]any{"position": 3},
	}

	expected := map[string]any{
		"tags":     []any{types.ValueErrorTag, types.ZeroDivisionErrorTag},
		"message":  "right of operator: ZeroDivisionError: division by zero",
		"position": 3,
	}
	if diff := cmp.Diff(expected, outer.Exception()); diff != "" {
		t.Errorf("unexpected exception (-want +got):\n%s", diff)
	}
	if got, want := outer.Error(), "ValueError: right of operator: ZeroDivisionError: division by zero"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestExceptionOf(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("wrapped: %w", &types.Error{Tag: types.TypeErrorTag})
	if diff := cmp.Diff(map[string]any{"tags": []any{types.TypeErrorTag}}, types.ExceptionOf(wrapped)); diff != "" {
		t.Errorf("unexpected exception (-want +got):\n%s", diff)
	}

	plain := errors.New("plain")
	if diff := cmp.Diff(map[string]any{"message": "plain"}, types.ExceptionOf(plain)); diff != "" {
		t.Errorf("unexpected exception (-want +got):\n%s", diff)
	}
}
