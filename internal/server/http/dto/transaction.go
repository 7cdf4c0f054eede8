package dto

// TransactionRequest describes the creation payload. Amount is a
// pointer so a missing or non-numeric field is distinguishable from a
// legitimate zero.
type TransactionRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        string   `json:"type"`
}

// TransactionResponse describes a stored record as returned to its
// owner.
type TransactionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
}
