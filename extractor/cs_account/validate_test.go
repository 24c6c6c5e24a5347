package cs_account

import (
	"reflect"
	"testing"

	"github.com/Robobc/credit-suisse-eof-parser/extractor/common"
)

func TestValidate_BackfillsCreditFromBalanceRise(t *testing.T) {
	transactions := []common.Transaction{
		{Date: "01.02.24", Description: "GROCERY STORE", Debit: "", Credit: "", Balance: "1000.00"},
		{Date: "02.02.24", Description: "INCOMING PAYMENT", Debit: "", Credit: "", Balance: "1200.00"},
	}

	validated := Validate(transactions)

	if len(validated) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(validated))
	}
	// First record has no prior balance, stays unchanged
	if validated[0].Debit != "" || validated[0].Credit != "" {
		t.Errorf("Expected first record untouched, got debit '%s', credit '%s'", validated[0].Debit, validated[0].Credit)
	}
	if validated[1].Credit != "200.00" {
		t.Errorf("Expected backfilled credit '200.00', got '%s'", validated[1].Credit)
	}
	if validated[1].Debit != "" {
		t.Errorf("Expected empty debit, got '%s'", validated[1].Debit)
	}
}

func TestValidate_BackfillsDebitFromBalanceDrop(t *testing.T) {
	transactions := []common.Transaction{
		{Date: "01.02.24", Description: "OPENING BALANCE", Balance: "1045.00"},
		{Date: "02.02.24", Description: "CARD PAYMENT", Balance: "1000.50"},
	}

	validated := Validate(transactions)

	if validated[1].Debit != "44.50" {
		t.Errorf("Expected backfilled debit '44.50', got '%s'", validated[1].Debit)
	}
	if validated[1].Credit != "" {
		t.Errorf("Expected empty credit, got '%s'", validated[1].Credit)
	}
}

func TestValidate_EqualBalancesLeftEmpty(t *testing.T) {
	transactions := []common.Transaction{
		{Date: "01.02.24", Description: "OPENING BALANCE", Balance: "1000.00"},
		{Date: "02.02.24", Description: "NO MOVEMENT", Balance: "1000.00"},
	}

	validated := Validate(transactions)

	if validated[1].Debit != "" || validated[1].Credit != "" {
		t.Errorf("Expected no attribution for equal balances, got debit '%s', credit '%s'", validated[1].Debit, validated[1].Credit)
	}
}

func TestValidate_PopulatedSideLeftUntouched(t *testing.T) {
	// A stated amount is never cross-checked against the balance delta
	transactions := []common.Transaction{
		{Date: "01.02.24", Description: "OPENING BALANCE", Balance: "1000.00"},
		{Date: "02.02.24", Description: "CARD PAYMENT", Debit: "45.00", Balance: "900.00"},
	}

	validated := Validate(transactions)

	if validated[1].Debit != "45.00" {
		t.Errorf("Expected stated debit '45.00' untouched, got '%s'", validated[1].Debit)
	}
	if validated[1].Credit != "" {
		t.Errorf("Expected empty credit, got '%s'", validated[1].Credit)
	}
}

func TestValidate_DropsRecordWithEmptyDescription(t *testing.T) {
	transactions := []common.Transaction{
		{Date: "01.02.24", Description: "  ", Balance: "1000.00"},
		{Date: "02.02.24", Description: "KEPT", Balance: "1100.00"},
	}

	validated := Validate(transactions)

	if len(validated) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(validated))
	}
	if validated[0].Description != "KEPT" {
		t.Errorf("Expected description 'KEPT', got '%s'", validated[0].Description)
	}
	// The dropped record never entered the balance fold, so the survivor
	// is treated as the first record and gets no backfill
	if validated[0].Credit != "" {
		t.Errorf("Expected empty credit, got '%s'", validated[0].Credit)
	}
}

func TestValidate_DropsRecordWithEmptyDateOrBalance(t *testing.T) {
	transactions := []common.Transaction{
		{Date: "", Description: "NO DATE", Balance: "1000.00"},
		{Date: "01.02.24", Description: "NO BALANCE", Balance: " "},
	}

	validated := Validate(transactions)

	if len(validated) != 0 {
		t.Errorf("Expected all records dropped, got %d", len(validated))
	}
}

func TestValidate_DropsUnparsableBalance(t *testing.T) {
	transactions := []common.Transaction{
		{Date: "01.02.24", Description: "BROKEN", Balance: "12.34.56"},
		{Date: "02.02.24", Description: "KEPT", Balance: "1000.00"},
	}

	validated := Validate(transactions)

	if len(validated) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(validated))
	}
	if validated[0].Description != "KEPT" {
		t.Errorf("Expected description 'KEPT', got '%s'", validated[0].Description)
	}
}

func TestValidate_Idempotent(t *testing.T) {
	transactions := []common.Transaction{
		{Date: "01.02.24", Description: "OPENING BALANCE", Balance: "1045.00"},
		{Date: "01.02.24", Description: "GROCERY STORE", Balance: "1000.00"},
		{Date: "02.02.24", Description: "SALARY", Credit: "200.00", Balance: "1200.00"},
	}

	once := Validate(transactions)
	twice := Validate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Expected validation to be a no-op on clean input:\nfirst:  %v\nsecond: %v", once, twice)
	}
}

func TestValidate_EmptyInput(t *testing.T) {
	validated := Validate([]common.Transaction{})

	if len(validated) != 0 {
		t.Errorf("Expected no transactions, got %d", len(validated))
	}
}
