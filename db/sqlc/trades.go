package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createTrade = `-- name: CreateTrade :one
INSERT INTO trades (user_id, pair, direction, stake, duration_secs, entry_price, payout)
VALUES ($1, $2, $3, $4, $5, $6, 0)
RETURNING id, user_id, pair, direction, stake, duration_secs, entry_price, exit_price, payout, outcome, resolved_at, created_at
`

type CreateTradeParams struct {
	UserID       int64
	Pair         string
	Direction    TradeDirection
	Stake        string
	DurationSecs int32
	EntryPrice   string
}

func (q *Queries) CreateTrade(ctx context.Context, arg CreateTradeParams) (Trade, error) {
	row := q.db.QueryRowContext(ctx, createTrade,
		arg.UserID,
		arg.Pair,
		arg.Direction,
		arg.Stake,
		arg.DurationSecs,
		arg.EntryPrice,
	)
	var i Trade
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Pair,
		&i.Direction,
		&i.Stake,
		&i.DurationSecs,
		&i.EntryPrice,
		&i.ExitPrice,
		&i.Payout,
		&i.Outcome,
		&i.ResolvedAt,
		&i.CreatedAt,
	)
	return i, err
}

const getTrade = `-- name: GetTrade :one
SELECT id, user_id, pair, direction, stake, duration_secs, entry_price, exit_price, payout, outcome, resolved_at, created_at
FROM trades
WHERE id = $1
`

func (q *Queries) GetTrade(ctx context.Context, id uuid.UUID) (Trade, error) {
	row := q.db.QueryRowContext(ctx, getTrade, id)
	var i Trade
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Pair,
		&i.Direction,
		&i.Stake,
		&i.DurationSecs,
		&i.EntryPrice,
		&i.ExitPrice,
		&i.Payout,
		&i.Outcome,
		&i.ResolvedAt,
		&i.CreatedAt,
	)
	return i, err
}

const getTradeForUpdate = `-- name: GetTradeForUpdate :one
SELECT id, user_id, pair, direction, stake, duration_secs, entry_price, exit_price, payout, outcome, resolved_at, created_at
FROM trades
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetTradeForUpdate(ctx context.Context, id uuid.UUID) (Trade, error) {
	row := q.db.QueryRowContext(ctx, getTradeForUpdate, id)
	var i Trade
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Pair,
		&i.Direction,
		&i.Stake,
		&i.DurationSecs,
		&i.EntryPrice,
		&i.ExitPrice,
		&i.Payout,
		&i.Outcome,
		&i.ResolvedAt,
		&i.CreatedAt,
	)
	return i, err
}

const settleTrade = `-- name: SettleTrade :one
UPDATE trades
SET exit_price = $2, payout = $3, outcome = $4, resolved_at = now()
WHERE id = $1 AND exit_price IS NULL
RETURNING id, user_id, pair, direction, stake, duration_secs, entry_price, exit_price, payout, outcome, resolved_at, created_at
`

type SettleTradeParams struct {
	ID        uuid.UUID
	ExitPrice string
	Payout    string
	Outcome   sql.NullBool
}

// SettleTrade writes the resolution exactly once: the exit_price IS NULL
// guard makes a second settlement return sql.ErrNoRows instead of
// overwriting the first.
func (q *Queries) SettleTrade(ctx context.Context, arg SettleTradeParams) (Trade, error) {
	row := q.db.QueryRowContext(ctx, settleTrade,
		arg.ID,
		arg.ExitPrice,
		arg.Payout,
		arg.Outcome,
	)
	var i Trade
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Pair,
		&i.Direction,
		&i.Stake,
		&i.DurationSecs,
		&i.EntryPrice,
		&i.ExitPrice,
		&i.Payout,
		&i.Outcome,
		&i.ResolvedAt,
		&i.CreatedAt,
	)
	return i, err
}

const listTradesByUser = `-- name: ListTradesByUser :many
SELECT id, user_id, pair, direction, stake, duration_secs, entry_price, exit_price, payout, outcome, resolved_at, created_at
FROM trades
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

type ListTradesByUserParams struct {
	UserID int64
	Limit  int32
	Offset int32
}

func (q *Queries) ListTradesByUser(ctx context.Context, arg ListTradesByUserParams) ([]Trade, error) {
	rows, err := q.db.QueryContext(ctx, listTradesByUser, arg.UserID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Trade
	for rows.Next() {
		var i Trade
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Pair,
			&i.Direction,
			&i.Stake,
			&i.DurationSecs,
			&i.EntryPrice,
			&i.ExitPrice,
			&i.Payout,
			&i.Outcome,
			&i.ResolvedAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listTrades = `-- name: ListTrades :many
SELECT id, user_id, pair, direction, stake, duration_secs, entry_price, exit_price, payout, outcome, resolved_at, created_at
FROM trades
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

type ListTradesParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListTrades(ctx context.Context, arg ListTradesParams) ([]Trade, error) {
	rows, err := q.db.QueryContext(ctx, listTrades, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Trade
	for rows.Next() {
		var i Trade
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Pair,
			&i.Direction,
			&i.Stake,
			&i.DurationSecs,
			&i.EntryPrice,
			&i.ExitPrice,
			&i.Payout,
			&i.Outcome,
			&i.ResolvedAt,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
