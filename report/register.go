package report

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/cortesi/ledger/register"
)

const dateLayout = "2006/01/02"

// RenderRegister writes one line per register.Entry: the date and payee
// print only on an xact's first entry, subsequent entries of the same
// xact indent under it, matching how ledger-family registers are
// conventionally printed.
func RenderRegister(w io.Writer, regs []register.Register) {
	s := NewStyles()

	dateW, payeeW, acctW := len(dateLayout), 0, 0
	for _, r := range regs {
		if n := runewidth.StringWidth(r.Payee); n > payeeW {
			payeeW = n
		}
		for _, e := range r.Entries {
			if n := runewidth.StringWidth(string(e.Account)); n > acctW {
				acctW = n
			}
		}
	}

	for _, r := range regs {
		for i, e := range r.Entries {
			datePayee := fmt.Sprintf("%-*s  %-*s", dateW, "", payeeW, "")
			if i == 0 {
				datePayee = fmt.Sprintf("%-*s  %-*s", dateW, r.Date.Format(dateLayout), payeeW, r.Payee)
			}
			acctCol := fmt.Sprintf("%-*s", acctW, string(e.Account))
			fmt.Fprintf(w, "%s  %s  %s  %s\n",
				s.Dim.Render(datePayee),
				s.Account.Render(acctCol),
				colorAmount(s, e.Total, e.Total.String()),
				s.Dim.Render(e.RunningTotal.String()),
			)
		}
	}
}
