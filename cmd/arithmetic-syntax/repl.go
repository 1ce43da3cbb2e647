package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/karupanerura/arithmetic-syntax/internal/evaluator"
	"github.com/karupanerura/arithmetic-syntax/internal/syntax"
)

const (
	tokensMode = "tokens"
	treeMode   = "tree"
	evalMode   = "eval"
)

type repl struct {
	mode   string
	json   bool
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	prompt bool
	color  bool
}

// loop handles one line at a time until an empty line or end of input.
// A bad line is reported and the loop goes on.
func (r *repl) loop() error {
	diag := color.New(color.FgRed)
	if r.color {
		diag.EnableColor()
	} else {
		diag.DisableColor()
	}

	// lines have no length limit
	br := bufio.NewReader(r.in)
	for {
		if r.prompt {
			if _, err := io.WriteString(r.out, "> "); err != nil {
				return err
			}
		}

		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line == "" {
			return nil
		}
		if err := r.handle(line); err != nil {
			if _, err := diag.Fprintf(r.errOut, "error: %v\n", err); err != nil {
				return err
			}
		}
		if readErr != nil {
			return nil
		}
	}
}

func (r *repl) handle(line string) error {
	switch r.mode {
	case tokensMode:
		tokens := syntax.Tokenize(line)
		if r.json {
			return dumpJSON(r.out, tokens)
		}
		return syntax.FormatTokens(r.out, tokens)

	case treeMode:
		tree, err := syntax.Parse(line)
		if err != nil {
			return err
		}
		if r.json {
			return dumpJSON(r.out, tree)
		}
		_, err = fmt.Fprintln(r.out, syntax.SExpr(tree))
		return err

	case evalMode:
		tree, err := syntax.Parse(line)
		if err != nil {
			return err
		}
		v, err := evaluator.Evaluate(tree)
		if err != nil {
			return err
		}
		if r.json {
			return dumpJSON(r.out, map[string]any{"source": line, "value": v})
		}
		_, err = fmt.Fprintln(r.out, v)
		return err

	default:
		return fmt.Errorf("unknown mode: %s", r.mode)
	}
}
