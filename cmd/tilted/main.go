package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/tilted"
)

const (
	historyFile = ".tilted_history"
	prompt      = "> "
)

// config holds the output settings from the command line.
type config struct {
	ast    bool
	tokens bool
	prec   uint
}

func main() {
	log.SetFlags(0)
	var (
		cfg         config
		interactive bool
	)
	flag.BoolVar(&cfg.ast, "p", false, "print parse trees instead of results")
	flag.BoolVar(&cfg.tokens, "tokens", false, "print the tokens of each expression")
	flag.UintVar(&cfg.prec, "prec", 0, "evaluate with this many bits of float precision (0 for exact integers and float64)")
	flag.BoolVar(&interactive, "i", false, "read expressions interactively (default if no args given)")
	flag.Parse()

	for _, arg := range flag.Args() {
		if err := cfg.run(os.Stdout, arg); err != nil {
			log.Fatal(err)
		}
	}
	if interactive || flag.NArg() == 0 {
		if err := cfg.repl(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}

// run evaluates one expression and prints the result to w.
func (cfg config) run(w io.Writer, src string) error {
	if cfg.tokens {
		toks, err := tilted.NewLexer(src).Tokens()
		for _, tok := range toks {
			fmt.Fprintln(w, tok)
		}
		if err != nil {
			return err
		}
	}
	n, err := tilted.Parse(src)
	if err != nil {
		return err
	}
	if cfg.ast {
		fmt.Fprintln(w, n)
		return nil
	}
	if cfg.prec != 0 {
		ctx := tilted.NewContext(tilted.Prec(cfg.prec))
		r := ctx.Eval(n)
		if r == nil {
			return ctx.Err()
		}
		fmt.Fprintln(w, r.Text('g', -1))
		return nil
	}
	r, err := n.Eval()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r)
	return nil
}

// repl reads and evaluates lines until EOF or :quit. Errors in expressions are
// logged and do not stop the loop.
func (cfg config) repl(w io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if f, err := os.Open(hist); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(hist); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case err == nil: // do nothing
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		default:
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit":
			return nil
		}
		ln.AppendHistory(line)
		if err := cfg.run(w, line); err != nil {
			log.Print(err)
		}
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}
