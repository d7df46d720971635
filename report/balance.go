package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/view"
)

// BalanceRow is one printable line of a balance report: an account name
// (already indented/compacted by the caller) and its value.
type BalanceRow struct {
	Name   account.AccName
	Amount amount.Amount
}

// FlattenBalanceView walks every root of v in name order and concatenates
// their flat rows, producing the row order a balance report prints in.
func FlattenBalanceView(v view.BalanceView[amount.Amount]) []BalanceRow {
	var out []BalanceRow
	flats := v.ToFlat(amount.Zero())
	for _, name := range v.Names() {
		for _, e := range flats[name].Entries() {
			out = append(out, BalanceRow{Name: e.Name, Amount: e.Balance})
		}
	}
	return out
}

// RenderBalance writes rows as an account/amount table, right-aligning
// the amount column to the widest rendered amount and, unless noTotal,
// appending a grand-total line.
func RenderBalance(w io.Writer, rows []BalanceRow, noTotal bool) {
	s := NewStyles()

	amtText := make([]string, len(rows))
	width := 0
	for i, r := range rows {
		amtText[i] = r.Amount.String()
		if n := runewidth.StringWidth(amtText[i]); n > width {
			width = n
		}
	}

	total := amount.Zero()
	for i, r := range rows {
		total = total.Add(r.Amount)
		amtCol := padLeft(amtText[i], width)
		amtCol = colorAmount(s, r.Amount, amtCol)
		fmt.Fprintf(w, "%s  %s\n", amtCol, s.Account.Render(string(r.Name)))
	}

	if noTotal {
		return
	}
	line := strings.Repeat("-", width)
	fmt.Fprintln(w, line)
	totalText := padLeft(total.String(), width)
	fmt.Fprintln(w, s.Total.Render(totalText))
}

func padLeft(s string, width int) string {
	n := runewidth.StringWidth(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func colorAmount(s Styles, a amount.Amount, text string) string {
	if q, ok := a.ToQuantity(); ok && q.Q.Cmp(decimal.Zero) < 0 {
		return s.Negative.Render(text)
	}
	return s.Amount.Render(text)
}
