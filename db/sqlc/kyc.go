package db

import (
	"context"
	"database/sql"
)

const createNewKYC = `-- name: CreateNewKYC :one
INSERT INTO kyc_records (user_id, status)
VALUES ($1, $2)
RETURNING id, user_id, status, document_type, document_number, note, created_at, updated_at
`

type CreateNewKYCParams struct {
	UserID int64
	Status KYCStatus
}

func (q *Queries) CreateNewKYC(ctx context.Context, arg CreateNewKYCParams) (KYC, error) {
	row := q.db.QueryRowContext(ctx, createNewKYC, arg.UserID, arg.Status)
	var i KYC
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Status,
		&i.DocumentType,
		&i.DocumentNumber,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getKYCByUserID = `-- name: GetKYCByUserID :one
SELECT id, user_id, status, document_type, document_number, note, created_at, updated_at
FROM kyc_records
WHERE user_id = $1
`

func (q *Queries) GetKYCByUserID(ctx context.Context, userID int64) (KYC, error) {
	row := q.db.QueryRowContext(ctx, getKYCByUserID, userID)
	var i KYC
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Status,
		&i.DocumentType,
		&i.DocumentNumber,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const submitKYC = `-- name: SubmitKYC :one
UPDATE kyc_records
SET status = $2, document_type = $3, document_number = $4, updated_at = now()
WHERE user_id = $1
RETURNING id, user_id, status, document_type, document_number, note, created_at, updated_at
`

type SubmitKYCParams struct {
	UserID         int64
	Status         KYCStatus
	DocumentType   sql.NullString
	DocumentNumber sql.NullString
}

func (q *Queries) SubmitKYC(ctx context.Context, arg SubmitKYCParams) (KYC, error) {
	row := q.db.QueryRowContext(ctx, submitKYC,
		arg.UserID,
		arg.Status,
		arg.DocumentType,
		arg.DocumentNumber,
	)
	var i KYC
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Status,
		&i.DocumentType,
		&i.DocumentNumber,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateKYCStatus = `-- name: UpdateKYCStatus :one
UPDATE kyc_records
SET status = $2, note = $3, updated_at = now()
WHERE user_id = $1
RETURNING id, user_id, status, document_type, document_number, note, created_at, updated_at
`

type UpdateKYCStatusParams struct {
	UserID int64
	Status KYCStatus
	Note   sql.NullString
}

func (q *Queries) UpdateKYCStatus(ctx context.Context, arg UpdateKYCStatusParams) (KYC, error) {
	row := q.db.QueryRowContext(ctx, updateKYCStatus, arg.UserID, arg.Status, arg.Note)
	var i KYC
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.Status,
		&i.DocumentType,
		&i.DocumentNumber,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listKYCByStatus = `-- name: ListKYCByStatus :many
SELECT id, user_id, status, document_type, document_number, note, created_at, updated_at
FROM kyc_records
WHERE status = $1
ORDER BY updated_at DESC
`

func (q *Queries) ListKYCByStatus(ctx context.Context, status KYCStatus) ([]KYC, error) {
	rows, err := q.db.QueryContext(ctx, listKYCByStatus, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []KYC
	for rows.Next() {
		var i KYC
		if err := rows.Scan(
			&i.ID,
			&i.UserID,
			&i.Status,
			&i.DocumentType,
			&i.DocumentNumber,
			&i.Note,
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
