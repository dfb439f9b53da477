package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Store exposes all queries plus the composed transactions the API needs
type Store interface {
	Querier
	ReplaceAccountTx(ctx context.Context, arg ReplaceAccountTxParams) (Account, error)
}

type SQLStore struct {
	*Queries
	db *sql.DB
}

func NewStore(db *sql.DB) Store {
	return &SQLStore{
		db:      db,
		Queries: New(db),
	}
}

func (store *SQLStore) execTx(ctx context.Context, callback func(*Queries) error) error {
	tx, err := store.db.BeginTx(ctx, nil)

	if err != nil {
		return err
	}

	queries := New(tx)

	if err = callback(queries); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("Transaction error: %v, Rollback error: %v", err, rbErr)
		}

		return err
	}

	return tx.Commit()
}

type ReplaceAccountTxParams struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Address     string         `json:"address"`
	PhoneNumber sql.NullString `json:"phone_number"`
	DateJoined  time.Time      `json:"date_joined"`
}

// ReplaceAccountTx overwrites every mutable field of an existing account in a
// single transaction. The id is preserved; a missing account surfaces as
// sql.ErrNoRows.
func (store *SQLStore) ReplaceAccountTx(ctx context.Context, arg ReplaceAccountTxParams) (Account, error) {
	var replaced Account

	err := store.execTx(ctx, func(q *Queries) error {
		var err error

		if _, err = q.GetAccount(ctx, arg.ID); err != nil {
			return err
		}

		replaced, err = q.UpdateAccount(ctx, UpdateAccountParams{
			ID:          arg.ID,
			Name:        arg.Name,
			Email:       arg.Email,
			Address:     arg.Address,
			PhoneNumber: arg.PhoneNumber,
			DateJoined:  arg.DateJoined,
		})

		return err
	})

	return replaced, err
}
