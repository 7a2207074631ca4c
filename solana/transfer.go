package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexZinkM/solcli/internal/client"
	"github.com/AlexZinkM/solcli/internal/common"
	"github.com/AlexZinkM/solcli/internal/log"
	"github.com/AlexZinkM/solcli/internal/model"

	"github.com/gagliardetto/solana-go"
)

const (
	solFeeLamports = 5000 // Fee in lamports (0.000005 SOL)
)

// InsufficientFundsError is returned when the source cannot cover amount + fee
type InsufficientFundsError struct {
	Have uint64
	Need uint64
}

func (e *InsufficientFundsError) Error() string {
	var maxLamports uint64
	if e.Have > solFeeLamports {
		maxLamports = e.Have - solFeeLamports
	}
	return fmt.Sprintf("insufficient SOL balance (fee: %s SOL). Have: %s SOL, need: %s SOL, max transferable: %s SOL",
		common.LamportsToSOL(solFeeLamports), common.LamportsToSOL(e.Have),
		common.LamportsToSOL(e.Need), common.LamportsToSOL(maxLamports))
}

// IsInsufficientFundsError checks if error is InsufficientFundsError
func IsInsufficientFundsError(err error) bool {
	var target *InsufficientFundsError
	return errors.As(err, &target)
}

// TransferSOL validates, signs and submits a SOL transfer from wallet, then
// waits for it to reach the client's commitment.
// Once the transaction is submitted the response is always returned, also
// together with an error, so the caller can still report the signature.
func TransferSOL(ctx context.Context, c *client.SolanaClient, wallet solana.PrivateKey, req *model.TransferRequest, poll PollOptions) (*model.TransferResponse, error) {
	sig, lamports, err := submitTransfer(ctx, c, wallet, req, poll.RequestTimeout)
	if err != nil {
		return nil, err
	}
	log.Tx.Info().Str("signature", sig.String()).Uint64("lamports", lamports).Msg("transfer submitted")

	resp := &model.TransferResponse{
		Signature:  sig.String(),
		From:       wallet.PublicKey().String(),
		To:         req.ToAddress,
		Lamports:   lamports,
		SOL:        common.LamportsToSOL(lamports),
		Commitment: string(c.Commitment()),
	}

	// Wait for the target commitment
	attempts, err := WaitForConfirmation(ctx, c.ConfirmTransaction, sig, poll)
	resp.Attempts = attempts
	if err != nil {
		return resp, err
	}
	resp.Confirmed = true
	return resp, nil
}

// submitTransfer runs every check and the send under one request timeout
func submitTransfer(ctx context.Context, c *client.SolanaClient, wallet solana.PrivateKey, req *model.TransferRequest, timeout time.Duration) (solana.Signature, uint64, error) {
	var none solana.Signature
	ctx, cancel := withRequestTimeout(ctx, timeout)
	defer cancel()

	// Validate recipient address
	toPubkey, err := solana.PublicKeyFromBase58(req.ToAddress)
	if err != nil {
		return none, 0, fmt.Errorf("invalid Solana address: %w", err)
	}

	// Convert amount to lamports (string-based, no float precision loss)
	lamports, err := common.SOLToLamports(req.Amount)
	if err != nil {
		return none, 0, fmt.Errorf("invalid amount: %w", err)
	}
	if lamports == 0 {
		return none, 0, fmt.Errorf("amount must be greater than 0")
	}

	// Verify private key length (we need the full 64-byte key)
	if len(wallet) != 64 {
		return none, 0, fmt.Errorf("invalid private key length")
	}

	// Check SOL sufficiency (amount + fee)
	balance, err := c.GetBalance(ctx, wallet.PublicKey())
	if err != nil {
		return none, 0, fmt.Errorf("failed to check balance: %w", err)
	}
	required := lamports + solFeeLamports
	if required < lamports || balance < required {
		return none, 0, &InsufficientFundsError{Have: balance, Need: required}
	}

	// An empty destination must end up rent exempt
	destBalance, err := c.GetBalance(ctx, toPubkey)
	if err != nil {
		return none, 0, fmt.Errorf("failed to check recipient balance: %w", err)
	}
	if destBalance == 0 {
		minimum, err := c.GetRentExemptMinimum(ctx, 0)
		if err != nil {
			return none, 0, fmt.Errorf("failed to get rent-exempt minimum: %w", err)
		}
		if lamports < minimum {
			return none, 0, fmt.Errorf("recipient account is empty: amount must be at least %s SOL to be rent exempt",
				common.LamportsToSOL(minimum))
		}
	}

	// Create and send transaction
	sig, err := c.SendSOLTransfer(ctx, wallet, toPubkey, lamports)
	if err != nil {
		return none, 0, fmt.Errorf("failed to send transaction: %w", err)
	}
	return sig, lamports, nil
}
