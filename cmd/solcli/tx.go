package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/solcli/internal/client"
	"github.com/AlexZinkM/solcli/internal/config"
	"github.com/AlexZinkM/solcli/internal/log"
	"github.com/AlexZinkM/solcli/internal/model"
	"github.com/AlexZinkM/solcli/internal/output"
	"github.com/AlexZinkM/solcli/internal/wallet"
	"github.com/AlexZinkM/solcli/solana"
)

func airdropCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "airdrop <address> <amount-sol>",
		Short: "Request SOL from the cluster faucet (devnet, testnet, localhost)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := submitContext()
			defer cancel()

			progress := output.NewProgress(os.Stderr)
			resp, err := solana.RequestAirdrop(ctx, client.NewSolanaClient(), args[0], args[1], pollOptions(g, progress))
			progress.Done()
			return finishSubmit(g, resp, err)
		},
	}
}

func transferCmd(g *globalFlags) *cobra.Command {
	var (
		keypairFile string
		from        string
		index       int
	)

	cmd := &cobra.Command{
		Use:   "transfer <to-address> <amount-sol>",
		Short: "Send SOL and wait for confirmation",
		Long: `Sign and submit a SOL transfer, then poll its status until it reaches
the configured commitment or the attempt budget runs out.

The signer comes from --keypair (default KEYPAIR_FILE): a solana-keygen
JSON array file, or a key-gen file where --from picks the record by
address and --index by position.

Example:
  solcli transfer 9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin 0.25 --index 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if keypairFile == "" {
				keypairFile = config.GetKeypairFile()
			}
			key, err := wallet.LoadPrivateKey(keypairFile, wallet.Selector{Address: from, Index: index}, func() ([]byte, error) {
				return config.PromptPassword(false)
			})
			if err != nil {
				return fmt.Errorf("failed to load keypair: %w", err)
			}
			// Always clear private key from memory
			defer clear(key)

			ctx, cancel := submitContext()
			defer cancel()

			progress := output.NewProgress(os.Stderr)
			resp, err := solana.TransferSOL(ctx, client.NewSolanaClient(), key,
				&model.TransferRequest{ToAddress: args[0], Amount: args[1]}, pollOptions(g, progress))
			progress.Done()
			return finishSubmit(g, resp, err)
		},
	}

	cmd.Flags().StringVarP(&keypairFile, "keypair", "k", "", "Keypair file of the sender")
	cmd.Flags().StringVar(&from, "from", "", "Sender address within the keypair file")
	cmd.Flags().IntVar(&index, "index", 0, "Sender record index within the keypair file")
	return cmd
}

// finishSubmit reports a submitted transaction. Whenever a response exists
// the signature is printed, also before an error, so it is never lost.
func finishSubmit(g *globalFlags, resp *model.TransferResponse, err error) error {
	if resp == nil {
		return err
	}
	if err != nil {
		log.Warn().Err(err).Str("signature", resp.Signature).
			Msg("transaction was submitted but not confirmed, check its status before resending")
	}
	if rerr := render(g, resp, output.RenderTransfer); rerr != nil {
		return rerr
	}
	return err
}
