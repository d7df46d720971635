package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/cortesi/ledger/account"
	"github.com/cortesi/ledger/amount"
	"github.com/cortesi/ledger/quantity"
	"github.com/cortesi/ledger/register"
	"github.com/cortesi/ledger/report"
	"github.com/cortesi/ledger/symbol"
)

func usdAmt(v int64) amount.Amount {
	return amount.FromQuantity(quantity.New(decimal.NewFromInt(v), symbol.Intern("$")))
}

func TestRenderBalance(t *testing.T) {
	rows := []report.BalanceRow{
		{Name: account.AccName("Assets:Bank:Checking"), Amount: usdAmt(1000)},
		{Name: account.AccName("Expenses:Food"), Amount: usdAmt(-1000)},
	}
	var buf bytes.Buffer
	report.RenderBalance(&buf, rows, false)
	out := buf.String()
	assert.True(t, len(out) > 0)
}

func TestRenderRegister(t *testing.T) {
	regs := []register.Register{
		{
			Date:  time.Date(2004, 5, 11, 0, 0, 0, 0, time.UTC),
			Payee: "Checking balance",
			Entries: []register.Entry{
				{Account: account.AccName("Assets:Bank:Checking"), Total: usdAmt(1000), RunningTotal: usdAmt(1000)},
				{Account: account.AccName("Equity:Opening Balances"), Total: usdAmt(-1000), RunningTotal: usdAmt(0)},
			},
		},
	}
	var buf bytes.Buffer
	report.RenderRegister(&buf, regs)
	assert.True(t, len(buf.String()) > 0)
}
