package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/term"

	"github.com/AlexZinkM/solcli/internal/client"
	"github.com/AlexZinkM/solcli/internal/config"
	"github.com/AlexZinkM/solcli/internal/model"
	"github.com/AlexZinkM/solcli/internal/output"
	"github.com/AlexZinkM/solcli/internal/wallet"
	"github.com/AlexZinkM/solcli/solana"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := rootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestKeyGenCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.jsonl")

	if err := execute(t, "key-gen", "--output", path, "--count", "2", "--json"); err != nil {
		t.Fatalf("key-gen: %v", err)
	}
	records, err := wallet.ReadRecords(path)
	if err != nil || len(records) != 2 {
		t.Fatalf("records = %d, %v", len(records), err)
	}

	if err := execute(t, "key-gen", "--output", path, "--new", "--json"); err != nil {
		t.Fatalf("key-gen --new: %v", err)
	}
	records, _ = wallet.ReadRecords(path)
	if len(records) != 1 {
		t.Errorf("after --new records = %d, want 1", len(records))
	}
}

func TestKeyGenCommand_BadWordCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.jsonl")
	err := execute(t, "key-gen", "--output", path, "--words", "13", "--new")
	if !errors.Is(err, wallet.ErrInvalidWordCount) {
		t.Fatalf("error = %v, want ErrInvalidWordCount", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("output file was created")
	}
}

func TestGlobalFlagsValidated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.jsonl")
	if err := execute(t, "--commitment", "eventually", "key-gen", "--output", path); err == nil {
		t.Error("expected error for unknown commitment")
	}
	if err := execute(t, "--url", "ftp://example.com", "key-gen", "--output", path); err == nil {
		t.Error("expected error for non-http URL")
	}
}

func TestArgumentCounts(t *testing.T) {
	if err := execute(t, "transfer", "only-one-arg"); err == nil {
		t.Error("transfer with one argument should fail")
	}
	if err := execute(t, "airdrop"); err == nil {
		t.Error("airdrop without arguments should fail")
	}
	if err := execute(t, "supply", "extra"); err == nil {
		t.Error("supply takes no arguments")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("wrapped: %w", solana.ErrConfirmationTimeout), "confirmation_timeout"},
		{&client.TransactionFailedError{Signature: "s", Reason: "r"}, "transaction_failed"},
		{fmt.Errorf("transfer: %w", &solana.InsufficientFundsError{Have: 1, Need: 2}), "insufficient_funds"},
		{wallet.ErrInvalidWordCount, "invalid_word_count"},
		{errors.New("other"), ""},
	}
	for _, tt := range tests {
		if got := errorCode(tt.err); got != tt.want {
			t.Errorf("errorCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestFinishSubmit_PrintsSignatureOnAnyError(t *testing.T) {
	var buf bytes.Buffer
	g := &globalFlags{stdout: &buf}
	resp := &model.TransferResponse{Signature: "SIG123", To: "T", SOL: "1.000000000"}
	pollErr := fmt.Errorf("poll: %w", context.DeadlineExceeded)

	if err := finishSubmit(g, resp, pollErr); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want the poll error", err)
	}
	if !strings.Contains(buf.String(), "SIG123") {
		t.Errorf("signature not printed: %q", buf.String())
	}

	buf.Reset()
	g.jsonOutput = true
	if err := finishSubmit(g, resp, solana.ErrConfirmationTimeout); !errors.Is(err, solana.ErrConfirmationTimeout) {
		t.Fatalf("error = %v", err)
	}
	if !strings.Contains(buf.String(), `"signature": "SIG123"`) {
		t.Errorf("JSON output missing signature: %q", buf.String())
	}
}

func TestFinishSubmit_NothingSubmitted(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("insufficient funds")
	if err := finishSubmit(&globalFlags{stdout: &buf}, nil, boom); !errors.Is(err, boom) {
		t.Fatalf("error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestPollOptions(t *testing.T) {
	if err := config.Init(""); err != nil {
		t.Fatal(err)
	}
	cfg := config.Get()
	opts := pollOptions(&globalFlags{}, output.NewProgress(io.Discard))
	if opts.Interval != cfg.ConfirmInterval || opts.MaxAttempts != cfg.ConfirmMaxAttempts || opts.RequestTimeout != cfg.RequestTimeout {
		t.Errorf("opts = %+v", opts)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		t.Skip("stderr is a terminal")
	}
	if opts.OnAttempt != nil {
		t.Error("progress dots enabled while stderr is not a terminal")
	}
}
