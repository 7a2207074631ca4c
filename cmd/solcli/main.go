// Command solcli is a command-line client for the Solana network.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
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

// globalFlags are the persistent flags shared by every command
type globalFlags struct {
	configPath string
	rpcURL     string
	commitment string
	logLevel   string
	jsonOutput bool
	noColor    bool

	stdout io.Writer
}

func rootCmd() *cobra.Command {
	g := globalFlags{stdout: os.Stdout}

	cmd := &cobra.Command{
		Use:   "solcli",
		Short: "Command-line client for the Solana network",
		Long: `Query cluster state and balances, request devnet airdrops, generate
mnemonic keypairs and send SOL transfers.

The cluster is chosen with --url (an http(s) URL or one of devnet, testnet,
mainnet-beta, localhost) or SOLANA_RPC_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := g.configPath
			if path == "" {
				path = os.Getenv("SOLCLI_CONFIG")
			}
			if err := config.Init(path); err != nil {
				return err
			}
			if err := config.Override(g.rpcURL, g.commitment, g.logLevel); err != nil {
				return err
			}
			cfg := config.Get()
			log.Init(cfg.LogLevel, cfg.LogJSON)

			if g.jsonOutput || g.noColor || !output.IsTerminal() {
				output.DisableColors()
			}
			log.Debug().Str("rpc", cfg.SolanaRPCURL).Str("commitment", cfg.Commitment).Msg("config loaded")
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML config file (default $SOLCLI_CONFIG)")
	pf.StringVarP(&g.rpcURL, "url", "u", "", "RPC URL or cluster moniker")
	pf.StringVar(&g.commitment, "commitment", "", "Commitment: processed|confirmed|finalized")
	pf.StringVar(&g.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error|off")
	pf.BoolVar(&g.jsonOutput, "json", false, "Print results as JSON")
	pf.BoolVar(&g.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		clusterInfoCmd(&g),
		supplyCmd(&g),
		balanceCmd(&g),
		airdropCmd(&g),
		transferCmd(&g),
		keyGenCmd(&g),
	)
	return cmd
}

func main() {
	root := rootCmd()
	if err := root.Execute(); err != nil {
		if jsonOutput, _ := root.PersistentFlags().GetBool("json"); jsonOutput {
			output.RenderJSON(os.Stderr, model.ErrorResponse{Error: err.Error(), Code: errorCode(err)})
		} else {
			output.RenderError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// errorCode classifies the errors a script may want to branch on
func errorCode(err error) string {
	var (
		failed *client.TransactionFailedError
		funds  *solana.InsufficientFundsError
	)
	switch {
	case errors.Is(err, solana.ErrConfirmationTimeout):
		return "confirmation_timeout"
	case errors.As(err, &failed):
		return "transaction_failed"
	case errors.As(err, &funds):
		return "insufficient_funds"
	case errors.Is(err, wallet.ErrInvalidWordCount):
		return "invalid_word_count"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return ""
	}
}

// render prints v as JSON or hands it to the terminal renderer
func render[T any](g *globalFlags, v T, terminal func(io.Writer, T)) error {
	if g.jsonOutput {
		if err := output.RenderJSON(g.stdout, v); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
		return nil
	}
	terminal(g.stdout, v)
	return nil
}
