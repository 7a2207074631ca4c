package output

import (
	"fmt"
	"io"

	"github.com/AlexZinkM/solcli/internal/model"
)

// RenderGenerate prints `key-gen`. Seed phrases are printed once here and
// nowhere else.
func RenderGenerate(w io.Writer, resp *model.GenerateResponse) {
	if resp.Reset {
		fmt.Fprintf(w, "%s %s\n", yellow("Deleted"), resp.File)
	}
	for i, kp := range resp.Keypairs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s %s\n", bold("Public key:"), green(kp.Address))
		fmt.Fprintf(w, "%s %s\n", bold("Seed phrase:"), kp.SeedPhrase)
		if kp.Sealed {
			fmt.Fprintln(w, "  (stored sealed)")
		}
		if kp.QR != "" {
			fmt.Fprint(w, kp.QR)
		}
	}
	fmt.Fprintf(w, "\nWrote %d keypair(s) to %s\n", len(resp.Keypairs), cyan(resp.File))
}
