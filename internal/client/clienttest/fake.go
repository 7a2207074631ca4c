// Package clienttest provides an in-memory stand-in for the Solana RPC
// endpoint, for tests of code built on client.SolanaClient.
package clienttest

import (
	"context"
	"encoding/binary"
	"errors"
	"sync"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// AirdropCall records one RequestAirdrop call
type AirdropCall struct {
	Account  solana.PublicKey
	Lamports uint64
}

// FakeRPC implements client.RPC. Zero values give empty but successful
// answers; set Errs[method] to make a method fail.
type FakeRPC struct {
	mu sync.Mutex

	Version    *rpc.GetVersionResult
	ClockData  []byte
	ClockSlot  uint64
	Supply     *rpc.SupplyResult
	SupplySlot uint64
	Balances   map[solana.PublicKey]uint64
	RentExempt uint64
	Blockhash  solana.Hash
	AirdropSig solana.Signature

	// StatusFn answers the n-th (0-based) GetSignatureStatuses call.
	// A nil status means the node has not seen the signature.
	StatusFn func(n int) (*rpc.SignatureStatusesResult, error)

	Errs map[string]error

	Sent         []*solana.Transaction
	SentOpts     []rpc.TransactionOpts
	Airdrops     []AirdropCall
	BalanceCalls []solana.PublicKey
	StatusCalls  int
}

// sysvarOwner owns every sysvar account
var sysvarOwner = solana.MustPublicKeyFromBase58("Sysvar1111111111111111111111111111111111111")

// ErrNoBlockhash is returned by GetLatestBlockhash when Blockhash is unset
var ErrNoBlockhash = errors.New("fake: no blockhash")

func (f *FakeRPC) err(method string) error {
	if f.Errs == nil {
		return nil
	}
	return f.Errs[method]
}

// EncodeClock serializes a Clock sysvar the way the runtime lays it out
func EncodeClock(slot uint64, epochStart int64, epoch, leaderEpoch uint64, unix int64) []byte {
	buf := make([]byte, 40)
	binary.LittleEndian.PutUint64(buf[0:], slot)
	binary.LittleEndian.PutUint64(buf[8:], uint64(epochStart))
	binary.LittleEndian.PutUint64(buf[16:], epoch)
	binary.LittleEndian.PutUint64(buf[24:], leaderEpoch)
	binary.LittleEndian.PutUint64(buf[32:], uint64(unix))
	return buf
}

func (f *FakeRPC) GetVersion(ctx context.Context) (*rpc.GetVersionResult, error) {
	if err := f.err("GetVersion"); err != nil {
		return nil, err
	}
	if f.Version == nil {
		return &rpc.GetVersionResult{}, nil
	}
	return f.Version, nil
}

func (f *FakeRPC) GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	if err := f.err("GetAccountInfoWithOpts"); err != nil {
		return nil, err
	}
	if !account.Equals(solana.SysVarClockPubkey) || f.ClockData == nil {
		return nil, rpc.ErrNotFound
	}
	out := &rpc.GetAccountInfoResult{
		Value: &rpc.Account{
			Owner: sysvarOwner,
			Data:  rpc.DataBytesOrJSONFromBytes(f.ClockData),
		},
	}
	out.Context.Slot = f.ClockSlot
	return out, nil
}

func (f *FakeRPC) GetSupply(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetSupplyResult, error) {
	if err := f.err("GetSupply"); err != nil {
		return nil, err
	}
	out := &rpc.GetSupplyResult{Value: f.Supply}
	out.Context.Slot = f.SupplySlot
	return out, nil
}

func (f *FakeRPC) GetBalance(ctx context.Context, account solana.PublicKey, commitment rpc.CommitmentType) (*rpc.GetBalanceResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BalanceCalls = append(f.BalanceCalls, account)
	if err := f.err("GetBalance"); err != nil {
		return nil, err
	}
	return &rpc.GetBalanceResult{Value: f.Balances[account]}, nil
}

func (f *FakeRPC) GetMinimumBalanceForRentExemption(ctx context.Context, dataSize uint64, commitment rpc.CommitmentType) (uint64, error) {
	if err := f.err("GetMinimumBalanceForRentExemption"); err != nil {
		return 0, err
	}
	return f.RentExempt, nil
}

func (f *FakeRPC) RequestAirdrop(ctx context.Context, account solana.PublicKey, lamports uint64, commitment rpc.CommitmentType) (solana.Signature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("RequestAirdrop"); err != nil {
		return solana.Signature{}, err
	}
	f.Airdrops = append(f.Airdrops, AirdropCall{Account: account, Lamports: lamports})
	return f.AirdropSig, nil
}

func (f *FakeRPC) GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	if err := f.err("GetLatestBlockhash"); err != nil {
		return nil, err
	}
	if f.Blockhash == (solana.Hash{}) {
		return nil, ErrNoBlockhash
	}
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{Blockhash: f.Blockhash, LastValidBlockHeight: 100},
	}, nil
}

func (f *FakeRPC) SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.err("SendTransactionWithOpts"); err != nil {
		return solana.Signature{}, err
	}
	f.Sent = append(f.Sent, transaction)
	f.SentOpts = append(f.SentOpts, opts)
	if len(transaction.Signatures) == 0 {
		return solana.Signature{}, errors.New("fake: unsigned transaction")
	}
	return transaction.Signatures[0], nil
}

func (f *FakeRPC) GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	f.mu.Lock()
	n := f.StatusCalls
	f.StatusCalls++
	f.mu.Unlock()

	if err := f.err("GetSignatureStatuses"); err != nil {
		return nil, err
	}
	if f.StatusFn == nil {
		return &rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{nil}}, nil
	}
	status, err := f.StatusFn(n)
	if err != nil {
		return nil, err
	}
	return &rpc.GetSignatureStatusesResult{Value: []*rpc.SignatureStatusesResult{status}}, nil
}

// ConfirmedAfter returns a StatusFn that reports nothing for the first n
// calls and then the given confirmation status.
func ConfirmedAfter(n int, status rpc.ConfirmationStatusType) func(int) (*rpc.SignatureStatusesResult, error) {
	return func(call int) (*rpc.SignatureStatusesResult, error) {
		if call < n {
			return nil, nil
		}
		return &rpc.SignatureStatusesResult{ConfirmationStatus: status}, nil
	}
}
