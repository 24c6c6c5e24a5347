package cs_account

import (
	"log"

	"github.com/Robobc/credit-suisse-eof-parser/extractor/common"
	"github.com/shopspring/decimal"
)

// Parse walks every line of every page in document order and emits one
// Transaction per accepted line. The running balance is carried across
// page boundaries; the first accepted line has no previous balance to
// compare against, so its debit/credit split is left to Validate.
func Parse(pages [][]string) []common.Transaction {
	cfg := loadConfig()
	transactions := []common.Transaction{}

	var prevBalance *decimal.Decimal

	for pageIndex, lines := range pages {
		pageNum := pageIndex + 1
		if len(lines) == 0 {
			log.Printf("Warning: no text found on page %d", pageNum)
			continue
		}

		for lineIndex, line := range lines {
			f := tokenize(cfg, line)
			if f == nil {
				continue
			}

			// Tokens passed the cheap shape test; this is the strict parse.
			currentBalance, err := decimal.NewFromString(f.balance)
			if err != nil {
				log.Printf("Error processing line %d on page %d: %v\nLine content: %s", lineIndex+1, pageNum, err, line)
				continue
			}

			var amount *decimal.Decimal
			if f.amount != "" {
				parsed, err := decimal.NewFromString(f.amount)
				if err != nil {
					log.Printf("Error processing line %d on page %d: %v\nLine content: %s", lineIndex+1, pageNum, err, line)
					continue
				}
				amount = &parsed
			}

			debit := ""
			credit := ""
			if prevBalance != nil && amount != nil {
				if currentBalance.GreaterThan(*prevBalance) {
					credit = f.amount
				} else {
					debit = f.amount
				}
			}

			transactions = append(transactions, common.Transaction{
				Date:        f.date,
				Description: f.description,
				Debit:       debit,
				Credit:      credit,
				Balance:     f.balance,
			})

			prevBalance = &currentBalance
		}
	}

	return transactions
}
