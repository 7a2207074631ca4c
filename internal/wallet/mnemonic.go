// Package wallet implements mnemonic-derived Solana keypairs and the
// JSON-lines keypair file they are stored in.
package wallet

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/tyler-smith/go-bip39"
)

// ValidWordCounts are the mnemonic lengths BIP-39 defines
var ValidWordCounts = []int{12, 15, 18, 21, 24}

// ErrInvalidWordCount is returned for a mnemonic length BIP-39 does not define
var ErrInvalidWordCount = errors.New("word count must be one of 12, 15, 18, 21, 24")

// EntropyBits returns the entropy size for a mnemonic of the given length.
func EntropyBits(words int) (int, error) {
	for _, n := range ValidWordCounts {
		if n == words {
			// 11 bits per word, 1 checksum bit per 32 bits of entropy
			return words * 32 / 3, nil
		}
	}
	return 0, fmt.Errorf("%d: %w", words, ErrInvalidWordCount)
}

// GenerateMnemonic creates a new English BIP-39 mnemonic of the given length.
func GenerateMnemonic(words int) (string, error) {
	bits, err := EntropyBits(words)
	if err != nil {
		return "", err
	}
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// KeypairFromMnemonic derives the Solana keypair for a mnemonic the way
// solana-keygen does without a derivation path: the first 32 bytes of the
// BIP-39 seed are the ed25519 seed.
func KeypairFromMnemonic(mnemonic, passphrase string) (solana.PrivateKey, error) {
	if !ValidateMnemonic(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("derive seed: %w", err)
	}
	defer clear(seed)

	return solana.PrivateKey(ed25519.NewKeyFromSeed(seed[:ed25519.SeedSize])), nil
}
