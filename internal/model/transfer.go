package model

// TransferRequest is an ephemeral SOL transfer: built, submitted, discarded
type TransferRequest struct {
	ToAddress string
	Amount    string // SOL, decimal string
}

// TransferResponse represents response for `solcli transfer` and `solcli airdrop`
type TransferResponse struct {
	Signature  string `json:"signature"`
	From       string `json:"from,omitempty"`
	To         string `json:"to"`
	Lamports   uint64 `json:"lamports"`
	SOL        string `json:"sol"`
	Commitment string `json:"commitment"`
	Confirmed  bool   `json:"confirmed"`
	Attempts   int    `json:"attempts"`
}
