package main

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/cortesi/ledger/register"
	"github.com/cortesi/ledger/report"
)

// RegisterCmd renders the "register"/"reg" report: one row per matching
// posting (or per depth-capped account), in running-total order.
type RegisterCmd struct {
	sourceFlags
	valuationFlags
	Head  int    `help:"Only print the first N transactions."`
	Tail  int    `help:"Only print the last N transactions."`
	Depth int    `help:"Collapse postings into one row per account at this depth (0 = per-posting)."`
	Fmt   string `help:"Output format: tty or json." default:"tty" enum:"tty,json"`
}

func (cmd *RegisterCmd) Run(ctx *kong.Context) error {
	j, err := cmd.readJournal()
	if err != nil {
		printJournalErr(ctx, err)
		return fmt.Errorf("parse error")
	}
	pdb, err := cmd.readPriceDB(j)
	if err != nil {
		return err
	}
	filt, err := cmd.filter()
	if err != nil {
		return err
	}

	xacts := j.Xacts
	if cmd.Head > 0 {
		xacts = j.XactsHead(cmd.Head)
	} else if cmd.Tail > 0 {
		xacts = j.XactsTail(cmd.Tail)
	}

	v := cmd.valuationFlags.resolve()
	regs := register.Build(xacts, v, filt, pdb, cmd.Depth)

	switch cmd.Fmt {
	case "json":
		data, err := json.MarshalIndent(regs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.Stdout, string(data))
		return nil
	default:
		report.RenderRegister(ctx.Stdout, regs)
		return nil
	}
}
