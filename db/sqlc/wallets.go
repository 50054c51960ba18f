package db

import (
	"context"

	"github.com/google/uuid"
)

const upsertWallet = `-- name: UpsertWallet :one
INSERT INTO wallets (user_id, asset, balance)
VALUES ($1, $2, 0)
ON CONFLICT (user_id, asset) DO UPDATE SET updated_at = now()
RETURNING id, user_id, asset, balance, created_at, updated_at
`

type UpsertWalletParams struct {
	UserID int64
	Asset  string
}

// UpsertWallet is the create-if-absent primitive: the first reference to a
// (user, asset) pair materializes a zero-balance row, later calls return the
// existing one.
func (q *Queries) UpsertWallet(ctx context.Context, arg UpsertWalletParams) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, upsertWallet, arg.UserID, arg.Asset)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getWallet = `-- name: GetWallet :one
SELECT id, user_id, asset, balance, created_at, updated_at
FROM wallets
WHERE id = $1
`

func (q *Queries) GetWallet(ctx context.Context, id uuid.UUID) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, getWallet, id)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getWalletForUpdate = `-- name: GetWalletForUpdate :one
SELECT id, user_id, asset, balance, created_at, updated_at
FROM wallets
WHERE user_id = $1 AND asset = $2
FOR UPDATE
`

type GetWalletForUpdateParams struct {
	UserID int64
	Asset  string
}

// GetWalletForUpdate locks the row so a balance check and the mutation that
// follows it cannot race a concurrent open/withdraw on the same wallet.
func (q *Queries) GetWalletForUpdate(ctx context.Context, arg GetWalletForUpdateParams) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, getWalletForUpdate, arg.UserID, arg.Asset)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getWalletByUserAndAsset = `-- name: GetWalletByUserAndAsset :one
SELECT id, user_id, asset, balance, created_at, updated_at
FROM wallets
WHERE user_id = $1 AND asset = $2
`

type GetWalletByUserAndAssetParams struct {
	UserID int64
	Asset  string
}

func (q *Queries) GetWalletByUserAndAsset(ctx context.Context, arg GetWalletByUserAndAssetParams) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, getWalletByUserAndAsset, arg.UserID, arg.Asset)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listWalletsByUser = `-- name: ListWalletsByUser :many
SELECT id, user_id, asset, balance, created_at, updated_at
FROM wallets
WHERE user_id = $1
ORDER BY asset
`

func (q *Queries) ListWalletsByUser(ctx context.Context, userID int64) ([]Wallet, error) {
	rows, err := q.db.QueryContext(ctx, listWalletsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Wallet
	for rows.Next() {
		var i Wallet
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Asset,
			&i.Balance,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const creditWalletBalance = `-- name: CreditWalletBalance :one
UPDATE wallets
SET balance = balance + $2::numeric, updated_at = now()
WHERE id = $1
RETURNING id, user_id, asset, balance, created_at, updated_at
`

type CreditWalletBalanceParams struct {
	ID     uuid.UUID
	Amount string
}

func (q *Queries) CreditWalletBalance(ctx context.Context, arg CreditWalletBalanceParams) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, creditWalletBalance, arg.ID, arg.Amount)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const debitWalletBalance = `-- name: DebitWalletBalance :one
UPDATE wallets
SET balance = balance - $2::numeric, updated_at = now()
WHERE id = $1 AND balance >= $2::numeric
RETURNING id, user_id, asset, balance, created_at, updated_at
`

type DebitWalletBalanceParams struct {
	ID     uuid.UUID
	Amount string
}

// DebitWalletBalance decrements atomically; the balance guard lives in the
// same statement, so a losing race surfaces as sql.ErrNoRows instead of a
// negative balance.
func (q *Queries) DebitWalletBalance(ctx context.Context, arg DebitWalletBalanceParams) (Wallet, error) {
	row := q.db.QueryRowContext(ctx, debitWalletBalance, arg.ID, arg.Amount)
	var i Wallet
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
