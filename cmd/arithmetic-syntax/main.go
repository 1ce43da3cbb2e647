package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"
	"github.com/karupanerura/arithmetic-syntax/internal/batch"
	"github.com/karupanerura/arithmetic-syntax/internal/server"
	"github.com/mattn/go-isatty"
)

type Option struct {
	Mode        string `short:"m" long:"mode" description:"[OPTIONAL] REPL output" choice:"tokens" choice:"tree" choice:"eval" default:"tokens"`
	JSON        bool   `long:"json" description:"[OPTIONAL] Print REPL results as JSON"`
	File        string `short:"f" long:"file" description:"[OPTIONAL] Batch file of expressions (.yaml or .json)" required:"false"`
	Parallelism int    `short:"p" long:"parallelism" description:"[OPTIONAL] Batch parallelism" default:"4"`
	Listen      string `short:"l" long:"listen" description:"[OPTIONAL] Listen host and port to serve the HTTP API" required:"false"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		} else {
			parser.WriteHelp(stdout)
			return 1
		}
	}
	if opt.File != "" && opt.Listen != "" {
		parser.WriteHelp(stdout)
		return 1
	}

	// server mode
	if opt.Listen != "" {
		if err := serve(opt.Listen); err != nil {
			log.Printf("failed to serve: %v", err)
			return 1
		}
		return 0
	}

	// batch mode
	if opt.File != "" {
		b, err := loadBatch(opt.File)
		if err != nil {
			log.Printf("failed to load batch: %v", err)
			return 1
		}

		results, err := b.Run(context.Background(), opt.Parallelism)
		if err != nil {
			log.Printf("failed to run batch: %v", err)
			return 1
		}
		if err = dumpJSON(stdout, results); err != nil {
			log.Printf("failed to dump batch results: %v", err)
			return 1
		}
		if batch.Failed(results) {
			return 1
		}
		return 0
	}

	r := &repl{
		mode:   opt.Mode,
		json:   opt.JSON,
		in:     stdin,
		out:    stdout,
		errOut: stderr,
		prompt: isTerminal(stdin),
		color:  isTerminal(stderr),
	}
	if err := r.loop(); err != nil {
		log.Printf("failed to read input: %v", err)
		return 1
	}
	return 0
}

func loadBatch(filePath string) (*batch.Batch, error) {
	var parseBatch func(io.Reader) (*batch.Batch, error)
	switch filepath.Ext(filePath) {
	case ".json":
		parseBatch = batch.ParseJSON
	case ".yaml", ".yml":
		parseBatch = batch.ParseYAML
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%q): %w", filePath, err)
	}
	defer f.Close()

	b, err := parseBatch(f)
	if err != nil {
		return nil, fmt.Errorf("batch.Parse: %w", err)
	}
	return b, nil
}

func serve(listen string) error {
	srv := http.Server{
		Handler: server.NewHTTPHandler(),
		Addr:    listen,
	}

	log.Printf("Listen HTTP on %s", listen)
	if err := srv.ListenAndServe(); errors.Is(err, http.ErrServerClosed) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if isTerminal(w) {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}

	b, err := json.MarshalIndentWithOption(v, "", "\t", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}
