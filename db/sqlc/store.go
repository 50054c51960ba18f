package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is the data access surface the services depend on. SQLStore is the
// real implementation; tests substitute in-memory fakes.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fq func(q Querier) error) error
}

type SQLStore struct {
	*Queries
	DB *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &SQLStore{
		DB:      db,
		Queries: New(db),
	}
}

// ExecTx runs fq inside a single database transaction. Every balance check in
// this codebase must share a transaction with the mutation it guards, so all
// ledger-touching services go through this (or an explicit BeginTx).
func (s *SQLStore) ExecTx(ctx context.Context, fq func(q Querier) error) error {
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	q := New(tx)
	if err := fq(q); err != nil {
		if txErr := tx.Rollback(); txErr != nil && txErr != sql.ErrTxDone {
			return fmt.Errorf("encountered rollback error: %v", txErr)
		}
		return err
	}

	return tx.Commit()
}
