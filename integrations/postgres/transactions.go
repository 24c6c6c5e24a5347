package postgres

import (
	"context"
	"fmt"

	"github.com/Robobc/credit-suisse-eof-parser/extractor/common"
	"github.com/jackc/pgx/v5"
)

// nullableAmount maps an empty debit/credit string to NULL
func nullableAmount(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// CreateTransactions bulk inserts transactions for a document
func (db *DB) CreateTransactions(ctx context.Context, documentID string, transactions []common.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, tx := range transactions {
		batch.Queue(`
			INSERT INTO transactions (
				document_id, sequence, date, description, debit, credit, balance
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			documentID, i+1, tx.Date, tx.Description,
			nullableAmount(tx.Debit), nullableAmount(tx.Credit), tx.Balance,
		)
	}

	br := db.Pool.SendBatch(ctx, batch)
	defer br.Close()

	for range transactions {
		_, err := br.Exec()
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	return nil
}
