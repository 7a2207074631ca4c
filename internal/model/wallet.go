package model

import (
	"encoding/json"
	"fmt"
)

// KeypairRecord is one line of a key-gen output file.
// Either Keypair/SeedPhrase or Sealed is set, never both.
type KeypairRecord struct {
	Address    string     `json:"address"`
	Keypair    KeyBytes   `json:"keypair,omitempty"`
	SeedPhrase string     `json:"seed_phrase,omitempty"`
	Sealed     *SealedKey `json:"sealed,omitempty"`
	CreatedAt  string     `json:"createdAt"`
}

// IsSealed reports whether the private material is encrypted
func (r *KeypairRecord) IsSealed() bool {
	return r.Sealed != nil
}

// SealedKey holds WalletData encrypted with a password (base64 fields)
type SealedKey struct {
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	CipherText string `json:"cipherText"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // full 64-byte key (stored as base64 in JSON)
	SeedPhrase string `json:"seedPhrase"`
}

// KeyBytes marshals as a JSON array of numbers, the same shape solana-keygen
// writes, instead of encoding/json's base64 default for []byte.
type KeyBytes []byte

func (k KeyBytes) MarshalJSON() ([]byte, error) {
	if k == nil {
		return []byte("null"), nil
	}
	nums := make([]uint16, len(k))
	for i, b := range k {
		nums[i] = uint16(b)
	}
	return json.Marshal(nums)
}

func (k *KeyBytes) UnmarshalJSON(data []byte) error {
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return fmt.Errorf("keypair must be an array of bytes: %w", err)
	}
	if nums == nil {
		*k = nil
		return nil
	}
	out := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return fmt.Errorf("keypair byte %d out of range: %d", i, n)
		}
		out[i] = byte(n)
	}
	*k = out
	return nil
}
