package solana

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexZinkM/solcli/internal/client"
	"github.com/AlexZinkM/solcli/internal/log"

	"github.com/gagliardetto/solana-go"
)

// ErrConfirmationTimeout is returned when a signature did not reach the
// target commitment within the poll budget
var ErrConfirmationTimeout = errors.New("transaction confirmation timed out")

// ConfirmFunc reports whether a signature reached the target commitment
type ConfirmFunc func(ctx context.Context, sig solana.Signature) (bool, error)

// PollOptions is a fixed-interval, fixed-attempt confirmation budget
type PollOptions struct {
	Interval    time.Duration
	MaxAttempts int
	// RequestTimeout bounds each RPC call, both before submission and per
	// status poll. Zero leaves calls bounded only by the caller's context.
	RequestTimeout time.Duration
	// OnAttempt is called after every poll that did not confirm
	OnAttempt func(attempt int)
}

// WaitForConfirmation polls confirm until it reports true, the attempt
// budget runs out, or the transaction is reported failed on-chain.
// RPC errors, including a poll hitting RequestTimeout, count as an attempt
// and polling continues. It returns the number of polls made.
func WaitForConfirmation(ctx context.Context, confirm ConfirmFunc, sig solana.Signature, opts PollOptions) (int, error) {
	if opts.MaxAttempts <= 0 {
		return 0, fmt.Errorf("max attempts must be > 0")
	}

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		callCtx, cancel := withRequestTimeout(ctx, opts.RequestTimeout)
		confirmed, err := confirm(callCtx, sig)
		cancel()
		if err != nil {
			if client.IsTransactionFailedError(err) {
				return attempt, err
			}
			log.Tx.Debug().Err(err).Int("attempt", attempt).Str("signature", sig.String()).Msg("status poll failed")
		} else if confirmed {
			log.Tx.Debug().Int("attempts", attempt).Str("signature", sig.String()).Msg("confirmed")
			return attempt, nil
		}

		if opts.OnAttempt != nil {
			opts.OnAttempt(attempt)
		}
		if attempt == opts.MaxAttempts {
			break
		}

		timer := time.NewTimer(opts.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempt, ctx.Err()
		case <-timer.C:
		}
	}

	return opts.MaxAttempts, fmt.Errorf("%w after %d attempts", ErrConfirmationTimeout, opts.MaxAttempts)
}

func withRequestTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
