package trade

import (
	"time"

	db "github.com/BitLeap/BitLeap-Backend/db/sqlc"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeModel struct {
	ID           uuid.UUID        `json:"id"`
	UserID       int64            `json:"user_id"`
	Pair         string           `json:"pair"`
	Direction    string           `json:"direction"`
	Stake        decimal.Decimal  `json:"stake"`
	DurationSecs int32            `json:"duration_secs"`
	EntryPrice   decimal.Decimal  `json:"entry_price"`
	ExitPrice    *decimal.Decimal `json:"exit_price,omitempty"`
	Payout       decimal.Decimal  `json:"payout"`
	Outcome      *bool            `json:"outcome,omitempty"`
	ResolvedAt   *time.Time       `json:"resolved_at,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

func ToTradeModel(t db.Trade) (*TradeModel, error) {
	stake, err := decimal.NewFromString(t.Stake)
	if err != nil {
		return nil, err
	}
	entry, err := decimal.NewFromString(t.EntryPrice)
	if err != nil {
		return nil, err
	}
	payout, err := decimal.NewFromString(t.Payout)
	if err != nil {
		return nil, err
	}

	m := &TradeModel{
		ID:           t.ID,
		UserID:       t.UserID,
		Pair:         t.Pair,
		Direction:    string(t.Direction),
		Stake:        stake,
		DurationSecs: t.DurationSecs,
		EntryPrice:   entry,
		Payout:       payout,
		CreatedAt:    t.CreatedAt,
	}

	if t.ExitPrice.Valid {
		exit, err := decimal.NewFromString(t.ExitPrice.String)
		if err != nil {
			return nil, err
		}
		m.ExitPrice = &exit
	}
	if t.Outcome.Valid {
		outcome := t.Outcome.Bool
		m.Outcome = &outcome
	}
	if t.ResolvedAt.Valid {
		resolvedAt := t.ResolvedAt.Time
		m.ResolvedAt = &resolvedAt
	}

	return m, nil
}

func ToTradeModelCollection(rows []db.Trade) ([]TradeModel, error) {
	trades := make([]TradeModel, 0, len(rows))
	for _, row := range rows {
		m, err := ToTradeModel(row)
		if err != nil {
			return nil, err
		}
		trades = append(trades, *m)
	}
	return trades, nil
}
