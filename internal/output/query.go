package output

import (
	"fmt"
	"io"

	"github.com/AlexZinkM/solcli/internal/model"
)

// RenderClusterInfo prints `cluster-info`
func RenderClusterInfo(w io.Writer, info *model.ClusterInfo) {
	fmt.Fprintf(w, "%s %s\n", bold("Cluster:"), cyan(info.RPCURL))
	fmt.Fprintf(w, "  Version:    %s (feature set %d)\n", info.Version, info.FeatureSet)
	fmt.Fprintf(w, "  Slot:       %d\n", info.Slot)
	fmt.Fprintf(w, "  Epoch:      %d\n", info.Epoch)
	fmt.Fprintf(w, "  Block time: %s UTC\n", info.Time)
}

// RenderSupply prints `supply`
func RenderSupply(w io.Writer, s *model.SupplyResponse) {
	fmt.Fprintf(w, "%s (slot %d)\n", bold("SOL supply"), s.Slot)
	tbl := newTable(w, "", "SOL", "Lamports")
	tbl.AddRow("Total", s.Total, s.TotalLamports)
	tbl.AddRow("Circulating", s.Circulating, s.CirculatingLamports)
	tbl.AddRow("Non-circulating", s.NonCirculating, s.NonCirculatingLamports)
	tbl.Print()
}

// RenderBalances prints `balance`, with a fiat column when priced
func RenderBalances(w io.Writer, balances []model.BalanceResponse) {
	if len(balances) == 1 && balances[0].Fiat == nil {
		b := balances[0]
		fmt.Fprintf(w, "%s %s SOL\n", b.Address, green(b.SOL))
		return
	}

	priced := len(balances) > 0 && balances[0].Fiat != nil
	if priced {
		fiat := balances[0].Fiat
		fmt.Fprintf(w, "Rate: 1 SOL = %s %s\n", fiat.Rate, fiat.Currency)
		tbl := newTable(w, "Address", "SOL", fiat.Currency)
		for _, b := range balances {
			tbl.AddRow(b.Address, b.SOL, b.Fiat.Amount)
		}
		tbl.Print()
		return
	}

	tbl := newTable(w, "Address", "SOL")
	for _, b := range balances {
		tbl.AddRow(b.Address, b.SOL)
	}
	tbl.Print()
}
