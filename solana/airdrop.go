package solana

import (
	"context"
	"fmt"

	"github.com/AlexZinkM/solcli/internal/client"
	"github.com/AlexZinkM/solcli/internal/common"
	"github.com/AlexZinkM/solcli/internal/log"
	"github.com/AlexZinkM/solcli/internal/model"

	"github.com/gagliardetto/solana-go"
)

// RequestAirdrop asks the cluster faucet for amount SOL and waits for the
// credit to reach the client's commitment. Like TransferSOL, once the
// request is accepted the response is returned alongside any error.
func RequestAirdrop(ctx context.Context, c *client.SolanaClient, address, amount string, poll PollOptions) (*model.TransferResponse, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid Solana address: %w", err)
	}

	lamports, err := common.SOLToLamports(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	if lamports == 0 {
		return nil, fmt.Errorf("amount must be greater than 0")
	}

	requestCtx, cancel := withRequestTimeout(ctx, poll.RequestTimeout)
	sig, err := c.RequestAirdrop(requestCtx, pubkey, lamports)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("airdrop request failed: %w", err)
	}
	log.Tx.Info().Str("signature", sig.String()).Uint64("lamports", lamports).Msg("airdrop requested")

	resp := &model.TransferResponse{
		Signature:  sig.String(),
		To:         pubkey.String(),
		Lamports:   lamports,
		SOL:        common.LamportsToSOL(lamports),
		Commitment: string(c.Commitment()),
	}

	attempts, err := WaitForConfirmation(ctx, c.ConfirmTransaction, sig, poll)
	resp.Attempts = attempts
	if err != nil {
		return resp, err
	}
	resp.Confirmed = true
	return resp, nil
}
