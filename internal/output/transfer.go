package output

import (
	"fmt"
	"io"

	"github.com/AlexZinkM/solcli/internal/model"
)

// RenderTransfer prints the result of `transfer` or `airdrop`
func RenderTransfer(w io.Writer, resp *model.TransferResponse) {
	if resp.From != "" {
		fmt.Fprintf(w, "Transfer %s SOL %s -> %s\n", bold(resp.SOL), resp.From, resp.To)
	} else {
		fmt.Fprintf(w, "Airdrop %s SOL -> %s\n", bold(resp.SOL), resp.To)
	}
	fmt.Fprintf(w, "  Signature: %s\n", resp.Signature)

	if resp.Confirmed {
		fmt.Fprintf(w, "  Status:    %s at %s commitment (after %d polls)\n", green("confirmed"), resp.Commitment, resp.Attempts)
	} else {
		fmt.Fprintf(w, "  Status:    %s at %s commitment after %d polls\n", yellow("not confirmed"), resp.Commitment, resp.Attempts)
	}
}
