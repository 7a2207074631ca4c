package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/solcli/internal/config"
	"github.com/AlexZinkM/solcli/internal/log"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
)

// clockSysvarSize is the serialized size of the Clock sysvar
const clockSysvarSize = 40

// RPC is the subset of *rpc.Client the CLI talks to.
type RPC interface {
	GetVersion(ctx context.Context) (*rpc.GetVersionResult, error)
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetSupply(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetSupplyResult, error)
	GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error)
	GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error)
	RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64, commitment rpc.CommitmentType) (solana.Signature, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

var _ RPC = (*rpc.Client)(nil)

// SolanaClient is a client for working with Solana RPC
type SolanaClient struct {
	rpcClient  RPC
	rpcURL     string
	commitment rpc.CommitmentType
}

// NewSolanaClient creates a client for the configured endpoint and commitment.
func NewSolanaClient() *SolanaClient {
	rpcURL := config.GetSolanaRPCURL()
	return &SolanaClient{
		rpcClient:  rpc.New(rpcURL),
		rpcURL:     rpcURL,
		commitment: config.GetCommitment(),
	}
}

// NewSolanaClientWithRPC wraps an existing RPC implementation.
func NewSolanaClientWithRPC(r RPC, rpcURL string, commitment rpc.CommitmentType) *SolanaClient {
	return &SolanaClient{
		rpcClient:  r,
		rpcURL:     rpcURL,
		commitment: commitment,
	}
}

// RPCURL returns the endpoint this client talks to
func (c *SolanaClient) RPCURL() string {
	return c.rpcURL
}

// Commitment returns the commitment used for reads and confirmation
func (c *SolanaClient) Commitment() rpc.CommitmentType {
	return c.commitment
}

// GetVersion returns the node's software version
func (c *SolanaClient) GetVersion(ctx context.Context) (*rpc.GetVersionResult, error) {
	version, err := c.rpcClient.GetVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Clock mirrors the Clock sysvar account layout
type Clock struct {
	Slot                uint64
	EpochStartTimestamp int64
	Epoch               uint64
	LeaderScheduleEpoch uint64
	UnixTimestamp       int64
}

// GetClock reads the Clock sysvar at finalized commitment.
// The returned slot is the context slot of the read.
func (c *SolanaClient) GetClock(ctx context.Context) (*Clock, uint64, error) {
	res, err := c.rpcClient.GetAccountInfoWithOpts(ctx, solana.SysVarClockPubkey, &rpc.GetAccountInfoOpts{
		Encoding:   solana.EncodingBase64,
		Commitment: rpc.CommitmentFinalized,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get clock account: %w", err)
	}
	if res == nil || res.Value == nil || res.Value.Data == nil {
		return nil, 0, errors.New("clock account has no data")
	}

	clock, err := DecodeClock(res.Value.Data.GetBinary())
	if err != nil {
		return nil, 0, err
	}
	return clock, res.Context.Slot, nil
}

// DecodeClock decodes raw Clock sysvar data
func DecodeClock(data []byte) (*Clock, error) {
	if len(data) < clockSysvarSize {
		return nil, fmt.Errorf("clock data too short: %d bytes", len(data))
	}
	var clock Clock
	if err := bin.NewBinDecoder(data).Decode(&clock); err != nil {
		return nil, fmt.Errorf("failed to decode clock: %w", err)
	}
	return &clock, nil
}

// GetSupply returns the supply breakdown in lamports and the slot it was read at
func (c *SolanaClient) GetSupply(ctx context.Context) (*rpc.SupplyResult, uint64, error) {
	res, err := c.rpcClient.GetSupply(ctx, c.commitment)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get supply: %w", err)
	}
	if res == nil || res.Value == nil {
		return nil, 0, errors.New("empty supply response")
	}
	return res.Value, res.Context.Slot, nil
}

// GetBalance gets SOL balance in lamports
func (c *SolanaClient) GetBalance(ctx context.Context, owner solana.PublicKey) (uint64, error) {
	balance, err := c.rpcClient.GetBalance(ctx, owner, c.commitment)
	if err != nil {
		return 0, fmt.Errorf("failed to get SOL balance: %w", err)
	}
	return balance.Value, nil
}

// GetRentExemptMinimum gets the minimum balance an account of dataSize bytes must hold
func (c *SolanaClient) GetRentExemptMinimum(ctx context.Context, dataSize uint64) (uint64, error) {
	lamports, err := c.rpcClient.GetMinimumBalanceForRentExemption(ctx, dataSize, rpc.CommitmentFinalized)
	if err != nil {
		return 0, fmt.Errorf("failed to get rent exempt minimum: %w", err)
	}
	return lamports, nil
}

// RequestAirdrop asks the cluster faucet to credit lamports to owner
func (c *SolanaClient) RequestAirdrop(ctx context.Context, owner solana.PublicKey, lamports uint64) (solana.Signature, error) {
	sig, err := c.rpcClient.RequestAirdrop(ctx, owner, lamports, c.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to request airdrop: %w", err)
	}
	log.RPC.Debug().Str("signature", sig.String()).Uint64("lamports", lamports).Msg("airdrop requested")
	return sig, nil
}

// SendSOLTransfer builds, signs and submits a system transfer from the
// wallet's account. It submits once and does not wait for confirmation.
func (c *SolanaClient) SendSOLTransfer(ctx context.Context, wallet solana.PrivateKey, to solana.PublicKey, lamports uint64) (solana.Signature, error) {
	// Validate private key (full 64-byte key)
	if len(wallet) != 64 {
		return solana.Signature{}, fmt.Errorf("invalid private key length: expected 64 bytes")
	}
	from := wallet.PublicKey()

	recent, err := c.rpcClient.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}
	if recent == nil || recent.Value == nil {
		return solana.Signature{}, errors.New("empty blockhash response")
	}

	transferInstruction := system.NewTransferInstruction(
		lamports,
		from,
		to,
	).Build()

	tx, err := solana.NewTransaction(
		[]solana.Instruction{transferInstruction},
		recent.Value.Blockhash,
		solana.TransactionPayer(from),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if from.Equals(key) {
			return &wallet
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	sig, err := c.rpcClient.SendTransactionWithOpts(
		ctx,
		tx,
		rpc.TransactionOpts{
			SkipPreflight:       false, // let the node simulate before accepting
			PreflightCommitment: c.commitment,
		},
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	log.RPC.Debug().
		Str("signature", sig.String()).
		Str("blockhash", recent.Value.Blockhash.String()).
		Msg("transaction submitted")
	return sig, nil
}

// ConfirmTransaction reports whether sig has reached the client's commitment.
// A transaction that landed with an error yields *TransactionFailedError.
func (c *SolanaClient) ConfirmTransaction(ctx context.Context, sig solana.Signature) (bool, error) {
	out, err := c.rpcClient.GetSignatureStatuses(ctx, false, sig)
	if err != nil {
		return false, fmt.Errorf("failed to get signature status: %w", err)
	}
	if out == nil || len(out.Value) == 0 || out.Value[0] == nil {
		// Not seen by the node yet
		return false, nil
	}

	status := out.Value[0]
	if status.Err != nil {
		return false, &TransactionFailedError{
			Signature: sig.String(),
			Reason:    fmt.Sprint(status.Err),
		}
	}
	return commitmentReached(status, c.commitment), nil
}

// commitmentReached compares a reported status with the target commitment
func commitmentReached(status *rpc.SignatureStatusesResult, target rpc.CommitmentType) bool {
	reported := status.ConfirmationStatus
	if reported == "" && status.Confirmations == nil {
		// Older nodes omit the status; nil confirmations means rooted
		reported = rpc.ConfirmationStatusFinalized
	}

	switch target {
	case rpc.CommitmentFinalized:
		return reported == rpc.ConfirmationStatusFinalized
	case rpc.CommitmentConfirmed:
		return reported == rpc.ConfirmationStatusConfirmed || reported == rpc.ConfirmationStatusFinalized
	default:
		return true
	}
}
