// Command ledger renders balance and register reports from a plain-text
// double-entry journal.
package main

import (
	"github.com/alecthomas/kong"
)

var cli struct {
	Balance  BalanceCmd  `cmd:"" aliases:"bal" help:"Print account balances as of a date."`
	Register RegisterCmd `cmd:"" aliases:"reg" help:"Print a running-total transaction listing."`
	Check    CheckCmd    `cmd:"" help:"Parse a journal and report the first error found, if any."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ledger"),
		kong.Description("A plain-text double-entry accounting engine."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
