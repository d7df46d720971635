package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/cortesi/ledger/errors"
)

// CheckCmd parses a journal and reports success or the first parse
// error encountered, without rendering any report.
type CheckCmd struct {
	File    string `short:"f" help:"Journal file to check (prompted if omitted and stdin is a TTY)." type:"path"`
	PriceDB string `name:"price-db" help:"Price database file to validate alongside the journal." type:"path"`
}

func (cmd *CheckCmd) Run(ctx *kong.Context) error {
	if cmd.File == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		var path string
		err := huh.NewInput().
			Title("Journal file to check").
			Value(&path).
			Run()
		if err != nil {
			return err
		}
		cmd.File = path
	}

	src := sourceFlags{File: cmd.File, PriceDB: cmd.PriceDB}
	j, err := src.readJournal()
	if err != nil {
		printJournalErr(ctx, err)
		return fmt.Errorf("parse error")
	}

	if cmd.PriceDB != "" {
		if _, err := src.readPriceDB(j); err != nil {
			printJournalErr(ctx, err)
			return fmt.Errorf("price-db error")
		}
	}

	fmt.Fprintf(ctx.Stdout, "check passed: %d transactions, %d price directives\n", len(j.Xacts), len(j.Prices))
	return nil
}

func printJournalErr(ctx *kong.Context, err error) {
	f := errors.NewTextFormatter()
	fmt.Fprintln(ctx.Stderr, f.Format(err))
}
