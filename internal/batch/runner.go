package batch

import (
	"context"
	"fmt"

	"github.com/karupanerura/arithmetic-syntax/internal/evaluator"
	"github.com/karupanerura/arithmetic-syntax/internal/syntax"
	"github.com/karupanerura/arithmetic-syntax/internal/types"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Source string         `json:"source"`
	Tokens []syntax.Token `json:"tokens"`
	Tree   syntax.Node    `json:"tree,omitempty"`
	SExpr  string         `json:"sexpr,omitempty"`
	Value  *int64         `json:"value,omitempty"`
	Error  any            `json:"error,omitempty"`

	Err error `json:"-"`
}

// Run parses and evaluates every entry concurrently, at most parallelism at
// a time (unbounded when parallelism <= 0). Results keep the entry order.
// Failing entries are recorded on their Result; only ctx cancellation makes
// Run itself fail.
func (b *Batch) Run(ctx context.Context, parallelism int) ([]*Result, error) {
	results := make([]*Result, len(b.Entries))

	eg, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		eg.SetLimit(parallelism)
	}
	for i, entry := range b.Entries {
		i := i
		entry := entry
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("expressions[%d]: %w", i, err)
			}
			results[i] = entry.run()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e Entry) run() *Result {
	p := syntax.NewParser(e.Source)
	r := &Result{
		Source: e.Source,
		Tokens: p.Tokens(),
	}

	tree, err := p.ParseExpression()
	if err != nil {
		return r.fail(err)
	}
	r.Tree = tree
	r.SExpr = syntax.SExpr(tree)

	v, err := evaluator.Evaluate(tree)
	if err != nil {
		return r.fail(err)
	}
	r.Value = lo.ToPtr(v)

	if e.Expect != nil && *e.Expect != v {
		return r.fail(&types.Error{
			Tag:   types.ValueErrorTag,
			Err:   fmt.Errorf("expected %d but got %d", *e.Expect, v),
			Extra: map[string]any{"expected": *e.Expect, "actual": v},
		})
	}
	return r
}

func (r *Result) fail(err error) *Result {
	r.Err = err
	r.Error = types.ExceptionOf(err)
	return r
}

// Failed reports whether any result carries an error.
func Failed(results []*Result) bool {
	return lo.SomeBy(results, func(r *Result) bool {
		return r.Err != nil
	})
}
