package trade

import (
	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/shopspring/decimal"
)

// Outcome of a settled contract. A tie refunds the stake in full.
type Outcome int

const (
	OutcomeTie Outcome = iota
	OutcomeWin
	OutcomeLoss
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "tie"
	}
}

// profitRates maps contract duration in seconds to the profit fraction paid
// on a win. Durations not listed pay the base rate.
var profitRates = map[int32]decimal.Decimal{
	60:  decimal.RequireFromString("0.80"),
	120: decimal.RequireFromString("0.85"),
	180: decimal.RequireFromString("0.90"),
	300: decimal.RequireFromString("1.00"),
}

var baseProfitRate = decimal.RequireFromString("0.80")

func ProfitRate(durationSecs int32) decimal.Decimal {
	if rate, ok := profitRates[durationSecs]; ok {
		return rate
	}
	return baseProfitRate
}

// Settle decides the contract outcome from entry and exit price. The price
// comparison is strict: exact equality is a tie, not a loss.
func Settle(direction db.TradeDirection, entry, exit decimal.Decimal) Outcome {
	cmp := exit.Cmp(entry)
	if cmp == 0 {
		return OutcomeTie
	}

	rose := cmp > 0
	if (rose && direction == db.DirectionLong) || (!rose && direction == db.DirectionShort) {
		return OutcomeWin
	}
	return OutcomeLoss
}

// PayoutFor computes the amount credited back to the wallet on settlement:
// stake plus profit on a win, the full stake on a tie, nothing on a loss.
func PayoutFor(stake decimal.Decimal, durationSecs int32, outcome Outcome) decimal.Decimal {
	switch outcome {
	case OutcomeWin:
		return stake.Add(stake.Mul(ProfitRate(durationSecs)))
	case OutcomeTie:
		return stake
	default:
		return decimal.Zero
	}
}
