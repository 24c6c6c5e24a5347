package common

// Transaction is one statement entry as it appears in the output document.
// Debit and Credit hold the normalized amount string; at most one of the
// two is non-empty. Balance is the normalized running-balance token taken
// from the source line, never a re-rendered value.
type Transaction struct {
	Date        string `json:"Date"`
	Description string `json:"Description"`
	Debit       string `json:"Debit"`
	Credit      string `json:"Credit"`
	Balance     string `json:"Balance"`
}
