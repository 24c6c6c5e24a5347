package cs_account

import (
	"log"
	"strings"

	"github.com/Robobc/credit-suisse-eof-parser/extractor/common"
	"github.com/shopspring/decimal"
)

// Validate cleans the parsed sequence: incomplete records are dropped, and
// a missing debit/credit is backfilled from the balance movement since the
// previous kept record. It tracks its own previous balance from scratch
// rather than reusing the parser's, so records the parser could not
// classify (no prior balance yet, or no amount token) get a second chance
// here. A record that already carries a debit or credit is left untouched;
// stated amounts are never cross-checked against the balance delta.
func Validate(transactions []common.Transaction) []common.Transaction {
	validated := make([]common.Transaction, 0, len(transactions))

	var prevBalance *decimal.Decimal

	for _, tx := range transactions {
		date := strings.TrimSpace(tx.Date)
		description := strings.TrimSpace(tx.Description)
		balance := strings.TrimSpace(tx.Balance)

		if date == "" || description == "" || balance == "" {
			continue
		}

		currentBalance, err := decimal.NewFromString(balance)
		if err != nil {
			log.Printf("Error validating transaction: %v", err)
			continue
		}

		debit := strings.TrimSpace(tx.Debit)
		credit := strings.TrimSpace(tx.Credit)

		if prevBalance != nil && debit == "" && credit == "" {
			diff := currentBalance.Sub(*prevBalance).Abs()
			switch {
			case currentBalance.LessThan(*prevBalance):
				debit = common.FormatAmount(diff)
			case currentBalance.GreaterThan(*prevBalance):
				credit = common.FormatAmount(diff)
			}
			// Equal balances mean no movement to attribute.
		}

		validated = append(validated, common.Transaction{
			Date:        date,
			Description: description,
			Debit:       debit,
			Credit:      credit,
			Balance:     balance,
		})

		prevBalance = &currentBalance
	}

	return validated
}
