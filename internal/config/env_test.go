package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.SolanaRPCURL != rpc.DevNet_RPC {
		t.Errorf("rpc url = %q, want devnet endpoint", c.SolanaRPCURL)
	}
	if c.Commitment != "confirmed" {
		t.Errorf("commitment = %q", c.Commitment)
	}
	if c.ConfirmInterval != 500*time.Millisecond || c.ConfirmMaxAttempts != 120 {
		t.Errorf("confirm budget = %v x %d", c.ConfirmInterval, c.ConfirmMaxAttempts)
	}
	if c.KeypairFile != "keypairs.jsonl" {
		t.Errorf("keypair file = %q", c.KeypairFile)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "http://127.0.0.1:8899")
	t.Setenv("CONFIRM_MAX_ATTEMPTS", "5")
	t.Setenv("SOLANA_COMMITMENT", "finalized")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.SolanaRPCURL != "http://127.0.0.1:8899" {
		t.Errorf("rpc url = %q", c.SolanaRPCURL)
	}
	if c.ConfirmMaxAttempts != 5 {
		t.Errorf("attempts = %d", c.ConfirmMaxAttempts)
	}
	if c.Commitment != "finalized" {
		t.Errorf("commitment = %q", c.Commitment)
	}
}

func TestLoad_YAMLOverridesEnvironment(t *testing.T) {
	t.Setenv("SOLANA_RPC_URL", "testnet")
	t.Setenv("MY_RPC", "https://rpc.example.com")

	path := filepath.Join(t.TempDir(), "solcli.yaml")
	content := "rpc_url: ${MY_RPC}\nconfirm_interval: 2s\nkeypair_file: /tmp/keys.jsonl\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.SolanaRPCURL != "https://rpc.example.com" {
		t.Errorf("rpc url = %q", c.SolanaRPCURL)
	}
	if c.ConfirmInterval != 2*time.Second {
		t.Errorf("interval = %v", c.ConfirmInterval)
	}
	if c.KeypairFile != "/tmp/keys.jsonl" {
		t.Errorf("keypair file = %q", c.KeypairFile)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			SolanaRPCURL:       "devnet",
			Commitment:         "confirmed",
			ConfirmInterval:    time.Second,
			ConfirmMaxAttempts: 1,
			RequestTimeout:     time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "bad scheme", mutate: func(c *Config) { c.SolanaRPCURL = "ftp://x" }, wantErr: "http or https"},
		{name: "no host", mutate: func(c *Config) { c.SolanaRPCURL = "http://" }, wantErr: "missing host"},
		{name: "bad commitment", mutate: func(c *Config) { c.Commitment = "max" }, wantErr: "invalid commitment"},
		{name: "zero interval", mutate: func(c *Config) { c.ConfirmInterval = 0 }, wantErr: "interval"},
		{name: "zero attempts", mutate: func(c *Config) { c.ConfirmMaxAttempts = 0 }, wantErr: "attempts"},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveCluster(t *testing.T) {
	tests := map[string]string{
		"devnet":                 rpc.DevNet_RPC,
		"Mainnet-Beta":           rpc.MainNetBeta_RPC,
		"t":                      rpc.TestNet_RPC,
		"localhost":              rpc.LocalNet_RPC,
		"https://my.node:8899/x": "https://my.node:8899/x",
	}
	for in, want := range tests {
		if got := ResolveCluster(in); got != want {
			t.Errorf("ResolveCluster(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOverride(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := Override("localhost", "finalized", "debug"); err != nil {
		t.Fatalf("Override: %v", err)
	}
	if GetSolanaRPCURL() != rpc.LocalNet_RPC {
		t.Errorf("rpc url = %q", GetSolanaRPCURL())
	}
	if GetCommitment() != rpc.CommitmentFinalized {
		t.Errorf("commitment = %q", GetCommitment())
	}
	if Get().LogLevel != "debug" {
		t.Errorf("log level = %q", Get().LogLevel)
	}
	if err := Override("", "bogus", ""); err == nil {
		t.Error("Override should reject a bad commitment")
	}
}
