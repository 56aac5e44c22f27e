package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var usd = accounting.Accounting{Symbol: "$", Precision: 2}

// Price renders a decimal amount as a display string, e.g. "$1,249.99".
func Price(amount decimal.Decimal) string {
	return usd.FormatMoneyDecimal(amount)
}
