package postgres

import (
	"context"
	"fmt"
)

// DocumentExists checks if a document was already imported, by source name
func (db *DB) DocumentExists(ctx context.Context, source string) (bool, string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM documents
		WHERE source = $1
	`, source).Scan(&id)

	if err != nil {
		if err.Error() == "no rows in result set" {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check document: %w", err)
	}

	return true, id, nil
}

// CreateDocument inserts a new document
func (db *DB) CreateDocument(ctx context.Context, source string, transactionCount int) (string, error) {
	var id string

	err := db.Pool.QueryRow(ctx, `
		INSERT INTO documents (source, transaction_count)
		VALUES ($1, $2)
		RETURNING id
	`, source, transactionCount).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create document: %w", err)
	}

	return id, nil
}

// DeleteDocument removes a document and its transactions (cascade)
func (db *DB) DeleteDocument(ctx context.Context, documentID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, documentID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
