package postgres

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Robobc/credit-suisse-eof-parser/extractor"
)

// ImportResult tracks the outcome of an import operation
type ImportResult struct {
	Processed int
	Skipped   int
	Failed    int
	Errors    []string
}

// ImportOptions configures the import behavior
type ImportOptions struct {
	Force   bool // Force reprocessing of existing documents
	Verbose bool // Enable verbose logging
}

// ImportFile parses a single PDF statement and stores it in the database.
// Returns: processed count, skipped count, failed count, error messages
func (db *DB) ImportFile(ctx context.Context, filePath string, opts ImportOptions) (processed int, skipped int, failed int, errors []string) {
	fileName := filepath.Base(filePath)
	source := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	f, err := os.Open(filePath)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: failed to open file: %v", fileName, err)}
	}
	defer f.Close()

	transactions, err := extractor.ProcessReader(f)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: extraction failed: %v", fileName, err)}
	}

	if len(transactions) == 0 {
		return 0, 0, 1, []string{fmt.Sprintf("%s: no transactions extracted", fileName)}
	}

	// Check if this document was imported before (natural key: source name)
	exists, existingID, err := db.DocumentExists(ctx, source)
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: check error: %v", fileName, err)}
	}

	if exists {
		if !opts.Force {
			if opts.Verbose {
				log.Printf("Skipping %s (already imported)", fileName)
			}
			return 0, 1, 0, nil
		}

		if err := db.DeleteDocument(ctx, existingID); err != nil {
			return 0, 0, 1, []string{fmt.Sprintf("%s: delete error: %v", fileName, err)}
		}
	}

	documentID, err := db.CreateDocument(ctx, source, len(transactions))
	if err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: document error: %v", fileName, err)}
	}

	if err := db.CreateTransactions(ctx, documentID, transactions); err != nil {
		return 0, 0, 1, []string{fmt.Sprintf("%s: transactions error: %v", fileName, err)}
	}

	if opts.Verbose {
		log.Printf("Imported %s (%d transactions)", fileName, len(transactions))
	}

	return 1, 0, 0, nil
}

// Import processes a PDF file or a directory of PDF files into the database
func (db *DB) Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	result := &ImportResult{}

	if !info.IsDir() {
		p, s, f, errs := db.ImportFile(ctx, path, opts)
		result.Processed += p
		result.Skipped += s
		result.Failed += f
		result.Errors = append(result.Errors, errs...)
		return result, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}

		p, s, f, errs := db.ImportFile(ctx, filepath.Join(path, e.Name()), opts)
		result.Processed += p
		result.Skipped += s
		result.Failed += f
		result.Errors = append(result.Errors, errs...)
	}

	return result, nil
}
