package common

import (
	"encoding/json"
	"log"
	"os"
)

// SaveTransactions writes the full transaction sequence to outputFile as a
// single pretty-printed JSON array. HTML escaping is off so descriptions
// with non-ASCII or &/<> characters round-trip as written.
func SaveTransactions(transactions []Transaction, outputFile string) error {
	f, err := os.Create(outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(transactions); err != nil {
		return err
	}

	log.Printf("Successfully saved %d transactions to %s", len(transactions), outputFile)
	return nil
}
