package model

// BalanceResponse is one line of `solcli balance`
type BalanceResponse struct {
	Address  string     `json:"address"`
	Lamports uint64     `json:"lamports"`
	SOL      string     `json:"sol"`
	Fiat     *FiatValue `json:"fiat,omitempty"`
}

// FiatValue is a balance priced in a fiat currency (display only)
type FiatValue struct {
	Currency string `json:"currency"`
	Rate     string `json:"rate"`
	Amount   string `json:"amount"`
}

// SupplyResponse represents response for `solcli supply`
type SupplyResponse struct {
	Slot                   uint64 `json:"slot"`
	TotalLamports          uint64 `json:"totalLamports"`
	CirculatingLamports    uint64 `json:"circulatingLamports"`
	NonCirculatingLamports uint64 `json:"nonCirculatingLamports"`
	Total                  string `json:"total"`
	Circulating            string `json:"circulating"`
	NonCirculating         string `json:"nonCirculating"`
}

// ClusterInfo represents response for `solcli cluster-info`
type ClusterInfo struct {
	RPCURL        string `json:"rpcUrl"`
	Version       string `json:"version"`
	FeatureSet    int64  `json:"featureSet"`
	Slot          uint64 `json:"slot"`
	Epoch         uint64 `json:"epoch"`
	UnixTimestamp int64  `json:"unixTimestamp"`
	Time          string `json:"time"`
}
