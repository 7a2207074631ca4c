package solana

import (
	"context"
	"fmt"
	"strconv"

	"github.com/AlexZinkM/solcli/internal/client"
	"github.com/AlexZinkM/solcli/internal/common"
	"github.com/AlexZinkM/solcli/internal/log"
	"github.com/AlexZinkM/solcli/internal/model"
	"github.com/AlexZinkM/solcli/internal/wallet"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentQueries bounds in-flight getBalance calls
const maxConcurrentQueries = 8

// PriceSource prices one SOL in a fiat currency
type PriceSource interface {
	GetSOLPrice(ctx context.Context, vsCurrency string) (string, error)
}

// ResolveAddresses turns balance arguments into addresses. An argument that
// parses as a public key is used as is, anything else is read as a keypair
// file. With no arguments the default keypair file is read.
func ResolveAddresses(args []string, defaultFile string) ([]string, error) {
	if len(args) == 0 {
		if defaultFile == "" {
			return nil, fmt.Errorf("no address given and no keypair file configured")
		}
		args = []string{defaultFile}
	}

	var addresses []string
	for _, arg := range args {
		if _, err := solana.PublicKeyFromBase58(arg); err == nil {
			addresses = append(addresses, arg)
			continue
		}
		// Read addresses from file
		fromFile, err := wallet.ReadAddresses(arg)
		if err != nil {
			return nil, fmt.Errorf("%q is neither an address nor a readable keypair file: %w", arg, err)
		}
		addresses = append(addresses, fromFile...)
	}
	if len(addresses) == 0 {
		return nil, wallet.ErrNoRecords
	}
	return addresses, nil
}

// GetBalances queries every address concurrently; results keep input order.
// With a non-empty fiat currency each balance is also priced through prices.
func GetBalances(ctx context.Context, c *client.SolanaClient, addresses []string, prices PriceSource, fiat string) ([]model.BalanceResponse, error) {
	pubkeys := make([]solana.PublicKey, len(addresses))
	for i, address := range addresses {
		pk, err := solana.PublicKeyFromBase58(address)
		if err != nil {
			return nil, fmt.Errorf("invalid Solana address %q: %w", address, err)
		}
		pubkeys[i] = pk
	}

	results := make([]model.BalanceResponse, len(pubkeys))
	var rate string

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQueries)
	if fiat != "" {
		if prices == nil {
			return nil, fmt.Errorf("no price source for %s", fiat)
		}
		g.Go(func() error {
			var err error
			rate, err = prices.GetSOLPrice(gctx, fiat)
			if err != nil {
				return fmt.Errorf("failed to get rate: %w", err)
			}
			return nil
		})
	}
	for i, pk := range pubkeys {
		i, pk := i, pk // per-iteration copies (go directive is below 1.22)
		g.Go(func() error {
			lamports, err := c.GetBalance(gctx, pk)
			if err != nil {
				return fmt.Errorf("%s: %w", pk, err)
			}
			results[i] = model.BalanceResponse{
				Address:  pk.String(),
				Lamports: lamports,
				SOL:      common.LamportsToSOL(lamports),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if fiat != "" {
		// Calculate fiat value (use float only for display, not for critical operations)
		rateFloat, err := strconv.ParseFloat(rate, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
		}
		for i := range results {
			sol := float64(results[i].Lamports) / float64(common.LamportsPerSOL)
			results[i].Fiat = &model.FiatValue{
				Currency: fiat,
				Rate:     rate,
				Amount:   fmt.Sprintf("%.2f", sol*rateFloat),
			}
		}
	}

	log.RPC.Debug().Int("addresses", len(results)).Msg("balances fetched")
	return results, nil
}

// GetSupply returns the cluster's SOL supply
func GetSupply(ctx context.Context, c *client.SolanaClient) (*model.SupplyResponse, error) {
	supply, slot, err := c.GetSupply(ctx)
	if err != nil {
		return nil, err
	}
	return &model.SupplyResponse{
		Slot:                   slot,
		TotalLamports:          supply.Total,
		CirculatingLamports:    supply.Circulating,
		NonCirculatingLamports: supply.NonCirculating,
		Total:                  common.LamportsToSOL(supply.Total),
		Circulating:            common.LamportsToSOL(supply.Circulating),
		NonCirculating:         common.LamportsToSOL(supply.NonCirculating),
	}, nil
}
