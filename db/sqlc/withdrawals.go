package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const createWithdrawal = `-- name: CreateWithdrawal :one
INSERT INTO withdrawals (user_id, asset, network, address, amount, status, reference)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, asset, network, address, amount, status, note, reference, created_at, updated_at
`

type CreateWithdrawalParams struct {
	UserID    int64
	Asset     string
	Network   string
	Address   string
	Amount    string
	Status    WithdrawalStatus
	Reference string
}

func (q *Queries) CreateWithdrawal(ctx context.Context, arg CreateWithdrawalParams) (Withdrawal, error) {
	row := q.db.QueryRowContext(ctx, createWithdrawal,
		arg.UserID,
		arg.Asset,
		arg.Network,
		arg.Address,
		arg.Amount,
		arg.Status,
		arg.Reference,
	)
	var i Withdrawal
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Network,
		&i.Address,
		&i.Amount,
		&i.Status,
		&i.Note,
		&i.Reference,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getWithdrawalForUpdate = `-- name: GetWithdrawalForUpdate :one
SELECT id, user_id, asset, network, address, amount, status, note, reference, created_at, updated_at
FROM withdrawals
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetWithdrawalForUpdate(ctx context.Context, id uuid.UUID) (Withdrawal, error) {
	row := q.db.QueryRowContext(ctx, getWithdrawalForUpdate, id)
	var i Withdrawal
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Network,
		&i.Address,
		&i.Amount,
		&i.Status,
		&i.Note,
		&i.Reference,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateWithdrawalStatus = `-- name: UpdateWithdrawalStatus :one
UPDATE withdrawals
SET status = $2, note = $3, updated_at = now()
WHERE id = $1
RETURNING id, user_id, asset, network, address, amount, status, note, reference, created_at, updated_at
`

type UpdateWithdrawalStatusParams struct {
	ID     uuid.UUID
	Status WithdrawalStatus
	Note   sql.NullString
}

func (q *Queries) UpdateWithdrawalStatus(ctx context.Context, arg UpdateWithdrawalStatusParams) (Withdrawal, error) {
	row := q.db.QueryRowContext(ctx, updateWithdrawalStatus, arg.ID, arg.Status, arg.Note)
	var i Withdrawal
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Network,
		&i.Address,
		&i.Amount,
		&i.Status,
		&i.Note,
		&i.Reference,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listWithdrawalsByUser = `-- name: ListWithdrawalsByUser :many
SELECT id, user_id, asset, network, address, amount, status, note, reference, created_at, updated_at
FROM withdrawals
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListWithdrawalsByUser(ctx context.Context, userID int64) ([]Withdrawal, error) {
	rows, err := q.db.QueryContext(ctx, listWithdrawalsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Withdrawal
	for rows.Next() {
		var i Withdrawal
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Asset,
			&i.Network,
			&i.Address,
			&i.Amount,
			&i.Status,
			&i.Note,
			&i.Reference,
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

const listWithdrawalsByStatus = `-- name: ListWithdrawalsByStatus :many
SELECT id, user_id, asset, network, address, amount, status, note, reference, created_at, updated_at
FROM withdrawals
WHERE status = $1
ORDER BY created_at
`

func (q *Queries) ListWithdrawalsByStatus(ctx context.Context, status WithdrawalStatus) ([]Withdrawal, error) {
	rows, err := q.db.QueryContext(ctx, listWithdrawalsByStatus, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Withdrawal
	for rows.Next() {
		var i Withdrawal
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Asset,
			&i.Network,
			&i.Address,
			&i.Amount,
			&i.Status,
			&i.Note,
			&i.Reference,
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
