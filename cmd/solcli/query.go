package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/solcli/internal/client"
	"github.com/AlexZinkM/solcli/internal/config"
	"github.com/AlexZinkM/solcli/internal/output"
	"github.com/AlexZinkM/solcli/solana"
)

func clusterInfoCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cluster-info",
		Short: "Show the node version, current slot and block time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			info, err := solana.GetClusterInfo(ctx, client.NewSolanaClient())
			if err != nil {
				return fmt.Errorf("cluster-info failed: %w", err)
			}
			return render(g, info, output.RenderClusterInfo)
		},
	}
}

func supplyCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "supply",
		Short: "Show total, circulating and non-circulating SOL supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext()
			defer cancel()

			supply, err := solana.GetSupply(ctx, client.NewSolanaClient())
			if err != nil {
				return fmt.Errorf("supply failed: %w", err)
			}
			return render(g, supply, output.RenderSupply)
		},
	}
}

func balanceCmd(g *globalFlags) *cobra.Command {
	var fiat string

	cmd := &cobra.Command{
		Use:   "balance [address-or-keypair-file ...]",
		Short: "Show SOL balances",
		Long: `Show the SOL balance of each address. An argument that is not a valid
address is read as a keypair file and every address in it is queried.
Without arguments the configured keypair file (KEYPAIR_FILE) is used.

Example:
  solcli balance 9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin
  solcli balance keypairs.jsonl --fiat usd`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addresses, err := solana.ResolveAddresses(args, config.GetKeypairFile())
			if err != nil {
				return err
			}

			ctx, cancel := commandContext()
			defer cancel()

			var prices solana.PriceSource
			if fiat != "" {
				prices = client.NewCoinGeckoClient(config.Get().CoinGeckoURL)
			}
			balances, err := solana.GetBalances(ctx, client.NewSolanaClient(), addresses, prices, fiat)
			if err != nil {
				return fmt.Errorf("balance failed: %w", err)
			}
			return render(g, balances, output.RenderBalances)
		},
	}

	cmd.Flags().StringVar(&fiat, "fiat", "", "Also show the value in this currency (e.g. usd, eur)")
	return cmd
}
