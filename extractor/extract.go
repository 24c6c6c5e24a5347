package extractor

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Robobc/credit-suisse-eof-parser/extractor/common"
	"github.com/Robobc/credit-suisse-eof-parser/extractor/cs_account"
)

// ExecuteAgainstPath runs the full parse-validate-save pipeline against a
// statement PDF, or against every PDF in a directory. For a directory,
// output names the directory the per-file JSON documents are written to;
// per-file failures are logged and the scan continues.
func ExecuteAgainstPath(input string, output string) error {
	info, err := os.Stat(input)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		log.Println("📄 Scanning ", input)
		return processFile(input, output)
	}

	log.Println("📂 Scanning ", input)
	entries, err := os.ReadDir(input)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		return err
	}

	processed := 0
	failed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}

		src := filepath.Join(input, e.Name())
		stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		dst := filepath.Join(output, stem+".json")

		if err := processFile(src, dst); err != nil {
			log.Printf("Error processing %s: %v", src, err)
			failed++
			continue
		}
		processed++
	}

	if processed == 0 {
		return fmt.Errorf("no statements processed in %s (%d failed)", input, failed)
	}
	return nil
}

func processFile(filePath string, outputFile string) error {
	pages, err := common.ExtractPagesFromPDF(filePath)
	if err != nil {
		return err
	}

	raw := cs_account.Parse(pages)
	log.Printf("Initially parsed %d transactions", len(raw))

	validated := cs_account.Validate(raw)
	log.Printf("Validated %d transactions", len(validated))

	return common.SaveTransactions(validated, outputFile)
}

// ProcessReader runs the same pipeline over an in-memory PDF and returns
// the validated sequence instead of persisting it. Used by the HTTP API
// and the database import.
func ProcessReader(reader io.Reader) ([]common.Transaction, error) {
	pages, err := common.ExtractPagesFromPDFReader(reader)
	if err != nil {
		return nil, err
	}

	return cs_account.Validate(cs_account.Parse(pages)), nil
}
