package postgres

import (
	"context"
	"fmt"
)

const ddl = `
-- Documents table with natural key (source file name)
CREATE TABLE IF NOT EXISTS documents (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    source VARCHAR(255) NOT NULL,
    transaction_count INTEGER NOT NULL DEFAULT 0,
    imported_at TIMESTAMPTZ DEFAULT NOW(),

    -- Natural key for deduplication
    UNIQUE(source)
);

-- Transactions table
-- date keeps the statement's DD.MM.YY token; the two-digit year makes the
-- century ambiguous, so it is stored as extracted rather than as DATE
CREATE TABLE IF NOT EXISTS transactions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    document_id UUID NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
    sequence INTEGER NOT NULL,
    date VARCHAR(8) NOT NULL,
    description TEXT NOT NULL,
    debit NUMERIC(18,2),
    credit NUMERIC(18,2),
    balance NUMERIC(18,2) NOT NULL,
    created_at TIMESTAMPTZ DEFAULT NOW(),

    -- Prevent duplicate transactions within a document
    UNIQUE(document_id, sequence)
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_documents_source ON documents(source);
CREATE INDEX IF NOT EXISTS idx_transactions_document_id ON transactions(document_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
`

// EnsureSchema creates tables if they don't exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
