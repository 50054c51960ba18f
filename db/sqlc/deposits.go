package db

import (
	"context"

	"github.com/google/uuid"
)

const createDeposit = `-- name: CreateDeposit :one
INSERT INTO deposits (user_id, asset, network, amount, status, reference)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, asset, network, amount, status, reference, created_at, updated_at
`

type CreateDepositParams struct {
	UserID    int64
	Asset     string
	Network   string
	Amount    string
	Status    DepositStatus
	Reference string
}

func (q *Queries) CreateDeposit(ctx context.Context, arg CreateDepositParams) (Deposit, error) {
	row := q.db.QueryRowContext(ctx, createDeposit,
		arg.UserID,
		arg.Asset,
		arg.Network,
		arg.Amount,
		arg.Status,
		arg.Reference,
	)
	var i Deposit
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Network,
		&i.Amount,
		&i.Status,
		&i.Reference,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDepositForUpdate = `-- name: GetDepositForUpdate :one
SELECT id, user_id, asset, network, amount, status, reference, created_at, updated_at
FROM deposits
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetDepositForUpdate(ctx context.Context, id uuid.UUID) (Deposit, error) {
	row := q.db.QueryRowContext(ctx, getDepositForUpdate, id)
	var i Deposit
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Network,
		&i.Amount,
		&i.Status,
		&i.Reference,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateDepositStatus = `-- name: UpdateDepositStatus :one
UPDATE deposits
SET status = $2, updated_at = now()
WHERE id = $1
RETURNING id, user_id, asset, network, amount, status, reference, created_at, updated_at
`

type UpdateDepositStatusParams struct {
	ID     uuid.UUID
	Status DepositStatus
}

func (q *Queries) UpdateDepositStatus(ctx context.Context, arg UpdateDepositStatusParams) (Deposit, error) {
	row := q.db.QueryRowContext(ctx, updateDepositStatus, arg.ID, arg.Status)
	var i Deposit
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Asset,
		&i.Network,
		&i.Amount,
		&i.Status,
		&i.Reference,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listDepositsByUser = `-- name: ListDepositsByUser :many
SELECT id, user_id, asset, network, amount, status, reference, created_at, updated_at
FROM deposits
WHERE user_id = $1
ORDER BY created_at DESC
`

func (q *Queries) ListDepositsByUser(ctx context.Context, userID int64) ([]Deposit, error) {
	rows, err := q.db.QueryContext(ctx, listDepositsByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Deposit
	for rows.Next() {
		var i Deposit
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Asset,
			&i.Network,
			&i.Amount,
			&i.Status,
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

const listDepositsByStatus = `-- name: ListDepositsByStatus :many
SELECT id, user_id, asset, network, amount, status, reference, created_at, updated_at
FROM deposits
WHERE status = $1
ORDER BY created_at
`

func (q *Queries) ListDepositsByStatus(ctx context.Context, status DepositStatus) ([]Deposit, error) {
	rows, err := q.db.QueryContext(ctx, listDepositsByStatus, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Deposit
	for rows.Next() {
		var i Deposit
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Asset,
			&i.Network,
			&i.Amount,
			&i.Status,
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
