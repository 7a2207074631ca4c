package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config contains all configuration parameters for the application.
// Sources, lowest precedence first: defaults, environment, YAML file, flags.
type Config struct {
	SolanaRPCURL       string        `envconfig:"SOLANA_RPC_URL" default:"devnet" yaml:"rpc_url"`
	Commitment         string        `envconfig:"SOLANA_COMMITMENT" default:"confirmed" yaml:"commitment"`
	ConfirmInterval    time.Duration `envconfig:"CONFIRM_INTERVAL" default:"500ms" yaml:"confirm_interval"`
	ConfirmMaxAttempts int           `envconfig:"CONFIRM_MAX_ATTEMPTS" default:"120" yaml:"confirm_max_attempts"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s" yaml:"request_timeout"`
	KeypairFile        string        `envconfig:"KEYPAIR_FILE" default:"keypairs.jsonl" yaml:"keypair_file"`
	CoinGeckoURL       string        `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3" yaml:"coingecko_url"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"warn" yaml:"log_level"`
	LogJSON            bool          `envconfig:"LOG_JSON" default:"false" yaml:"log_json"`
}

// cfg is the global configuration instance
var cfg *Config

// clusterMonikers maps the short cluster names to their public endpoints
var clusterMonikers = map[string]string{
	"devnet":       rpc.DevNet_RPC,
	"d":            rpc.DevNet_RPC,
	"testnet":      rpc.TestNet_RPC,
	"t":            rpc.TestNet_RPC,
	"mainnet-beta": rpc.MainNetBeta_RPC,
	"m":            rpc.MainNetBeta_RPC,
	"localhost":    rpc.LocalNet_RPC,
	"l":            rpc.LocalNet_RPC,
}

// Init loads configuration from environment variables and, when path is
// non-empty, from a YAML file on top of them.
func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Load builds a Config without touching the global instance.
func Load(path string) (*Config, error) {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Allows values like: rpc_url: ${HELIUS_URL}
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate resolves cluster monikers and checks every field.
func (c *Config) Validate() error {
	c.SolanaRPCURL = ResolveCluster(c.SolanaRPCURL)
	u, err := url.Parse(c.SolanaRPCURL)
	if err != nil {
		return fmt.Errorf("invalid rpc url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid rpc url %q (expected http or https)", c.SolanaRPCURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid rpc url %q (missing host)", c.SolanaRPCURL)
	}

	if _, err := ParseCommitment(c.Commitment); err != nil {
		return err
	}
	if c.ConfirmInterval <= 0 {
		return fmt.Errorf("confirm interval must be > 0")
	}
	if c.ConfirmMaxAttempts <= 0 {
		return fmt.Errorf("confirm max attempts must be > 0")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be > 0")
	}
	return nil
}

// ResolveCluster turns a moniker such as "devnet" into its RPC URL.
// Anything else is returned unchanged.
func ResolveCluster(s string) string {
	if u, ok := clusterMonikers[strings.ToLower(strings.TrimSpace(s))]; ok {
		return u
	}
	return s
}

// ParseCommitment maps a commitment name to the SDK type
func ParseCommitment(s string) (rpc.CommitmentType, error) {
	switch rpc.CommitmentType(strings.ToLower(s)) {
	case rpc.CommitmentProcessed:
		return rpc.CommitmentProcessed, nil
	case rpc.CommitmentConfirmed:
		return rpc.CommitmentConfirmed, nil
	case rpc.CommitmentFinalized:
		return rpc.CommitmentFinalized, nil
	}
	return "", fmt.Errorf("invalid commitment %q (expected processed, confirmed or finalized)", s)
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// Override applies command-line values over the loaded configuration and
// re-validates. Empty strings leave the field alone.
func Override(rpcURL, commitment, logLevel string) error {
	c := Get()
	if rpcURL != "" {
		c.SolanaRPCURL = rpcURL
	}
	if commitment != "" {
		c.Commitment = commitment
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	return c.Validate()
}

// GetSolanaRPCURL returns Solana RPC URL from configuration
func GetSolanaRPCURL() string {
	return Get().SolanaRPCURL
}

// GetCommitment returns the configured commitment. Validate has already
// rejected bad values, so the error is not reachable after Init.
func GetCommitment() rpc.CommitmentType {
	c, _ := ParseCommitment(Get().Commitment)
	return c
}

// GetKeypairFile returns the default keypair file path
func GetKeypairFile() string {
	return Get().KeypairFile
}
