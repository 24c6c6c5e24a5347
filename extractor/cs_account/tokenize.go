// Package cs_account extracts transactions from Credit Suisse
// extract-of-account statements. The statement has no fixed column layout
// after text extraction, so lines are tokenized heuristically: a
// transaction line starts with a DD.MM.YY date and ends in a numeric
// running balance, with an optional amount token in between.
package cs_account

import (
	"regexp"
	"strings"

	"github.com/Robobc/credit-suisse-eof-parser/extractor/common"
	"github.com/spf13/viper"
)

type config struct {
	TransactionDate *regexp.Regexp
	MinTokens       int
}

func loadConfig() config {
	return config{
		TransactionDate: regexp.MustCompile(viper.GetString("statement.CREDIT_SUISSE_ACCOUNT.patterns.transaction_date")),
		MinTokens:       viper.GetInt("statement.CREDIT_SUISSE_ACCOUNT.patterns.min_tokens"),
	}
}

// fields holds the raw strings pulled out of one transaction line.
// Amounts are normalized token strings, not parsed values.
type fields struct {
	date        string
	description string
	amount      string
	balance     string
}

// tokenize splits a raw line and decides whether it encodes a transaction.
// Returns nil for anything that does not look like one: too few tokens,
// wrong date shape, or no numeric token to serve as the balance.
func tokenize(cfg config, line string) *fields {
	parts := strings.Fields(line)
	if len(parts) < cfg.MinTokens {
		return nil
	}

	if !cfg.TransactionDate.MatchString(parts[0]) {
		return nil
	}

	// The rightmost numeric token is the balance.
	balanceIndex := -1
	balance := ""
	for i := len(parts) - 1; i >= 0; i-- {
		if common.IsNumeric(parts[i]) {
			balance = common.CleanAmount(parts[i])
			balanceIndex = i
			break
		}
	}
	if balanceIndex < 0 || balance == "" {
		return nil
	}

	// The first numeric token left of the balance (but right of the date)
	// is the transaction amount. Absence is fine; the balance delta can
	// recover it later.
	amountIndex := -1
	amount := ""
	for i := balanceIndex - 1; i >= 1; i-- {
		if common.IsNumeric(parts[i]) {
			amount = common.CleanAmount(parts[i])
			amountIndex = i
			break
		}
	}

	descriptionEnd := balanceIndex
	if amountIndex > 0 {
		descriptionEnd = amountIndex
	}
	description := strings.TrimSpace(strings.Join(parts[1:descriptionEnd], " "))

	return &fields{
		date:        parts[0],
		description: description,
		amount:      amount,
		balance:     balance,
	}
}
