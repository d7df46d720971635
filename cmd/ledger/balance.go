package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alecthomas/kong"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/ledger"
	"github.com/cortesi/ledger/report"
	"github.com/cortesi/ledger/telemetry"
	"github.com/cortesi/ledger/view"
)

// BalanceCmd renders the "balance"/"bal" report: every matching
// account's holdings as of a single date, valued under the chosen
// scheme.
type BalanceCmd struct {
	sourceFlags
	valuationFlags
	At      dateFlag `help:"As-of date for the balance (defaults to the journal's latest xact date)."`
	Flat    bool     `help:"Print a flat list instead of the hierarchical tree."`
	Depth   int      `help:"Collapse accounts below this depth (0 = no limit)."`
	Empty   bool     `short:"E" help:"Include zero-balance accounts."`
	NoTotal bool     `name:"no-total" help:"Suppress the grand-total line."`
	Fmt     string   `help:"Output format: tty or json." default:"tty" enum:"tty,json"`
	Watch   bool     `help:"Re-render whenever the journal or price-db file changes."`
	Timing  bool     `help:"Print a timing breakdown to stderr after rendering."`
}

func (cmd *BalanceCmd) Run(ctx *kong.Context) error {
	render := func() error {
		var collector telemetry.Collector
		if cmd.Timing {
			collector = telemetry.NewTimingCollector()
		} else {
			collector = telemetry.FromContext(context.Background())
		}

		loadTimer := collector.Start("balance.load")
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
		loadTimer.End()

		at := time.Now()
		if cmd.At.set {
			at = cmd.At.t
		} else if len(j.Xacts) > 0 {
			at = j.Xacts[0].Date()
			for _, x := range j.Xacts[1:] {
				if x.Date().After(at) {
					at = x.Date()
				}
			}
		}

		buildTimer := collector.Start("balance.build")
		l := ledger.FromJournal(j)
		bv := ledger.BuildBalanceView(l, []time.Time{at}, filt, pdb)
		buildTimer.End()
		v := cmd.valuationFlags.resolve()

		valued := map[account.AccName]*view.Hier[amount.Amount]{}
		for _, name := range bv.Names() {
			root := bv.Root(name)
			valued[name] = view.ValuedInHier(root, func(h ledger.Holdings) amount.Amount {
				b, _ := h.At(at)
				return b.ValuedIn(v)
			})
		}
		rendered := view.NewBalanceView(valued)
		if !cmd.Empty {
			rendered = rendered.RemoveEmptyAccounts()
		}
		if cmd.Depth > 0 {
			rendered = rendered.LimitAccountsDepth(cmd.Depth)
		}
		if !cmd.Flat {
			rendered = rendered.ToCompact(func(a, b amount.Amount) bool { return a.Sub(b).IsZero() })
		}

		rows := report.FlattenBalanceView(rendered)
		var renderErr error
		switch cmd.Fmt {
		case "json":
			renderErr = renderBalanceJSON(ctx, rows)
		default:
			report.RenderBalance(ctx.Stdout, rows, cmd.NoTotal)
		}
		if cmd.Timing {
			fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}
		return renderErr
	}

	if cmd.Watch {
		return watchAndRerun(cmd.watchPaths(), render)
	}
	return render()
}

func (cmd *BalanceCmd) watchPaths() []string {
	var paths []string
	if cmd.File != "" {
		paths = append(paths, cmd.File)
	}
	if cmd.PriceDB != "" {
		paths = append(paths, cmd.PriceDB)
	}
	return paths
}

type balanceRowJSON struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
}

func renderBalanceJSON(ctx *kong.Context, rows []report.BalanceRow) error {
	out := make([]balanceRowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, balanceRowJSON{Account: string(r.Name), Amount: r.Amount.String()})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, string(data))
	return nil
}
