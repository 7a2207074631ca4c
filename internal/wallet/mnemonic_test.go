package wallet

import (
	"errors"
	"strings"
	"testing"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestGenerateMnemonic_WordCounts(t *testing.T) {
	for _, words := range ValidWordCounts {
		mnemonic, err := GenerateMnemonic(words)
		if err != nil {
			t.Fatalf("GenerateMnemonic(%d) error: %v", words, err)
		}
		if got := len(strings.Fields(mnemonic)); got != words {
			t.Errorf("GenerateMnemonic(%d) word count = %d", words, got)
		}
		if !ValidateMnemonic(mnemonic) {
			t.Errorf("GenerateMnemonic(%d) produced an invalid mnemonic", words)
		}
	}
}

func TestGenerateMnemonic_InvalidWordCount(t *testing.T) {
	for _, words := range []int{0, 11, 13, 25, -12} {
		if _, err := GenerateMnemonic(words); !errors.Is(err, ErrInvalidWordCount) {
			t.Errorf("GenerateMnemonic(%d) error = %v, want ErrInvalidWordCount", words, err)
		}
	}
}

func TestGenerateMnemonic_Unique(t *testing.T) {
	m1, err := GenerateMnemonic(12)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := GenerateMnemonic(12)
	if err != nil {
		t.Fatal(err)
	}
	if m1 == m2 {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestEntropyBits(t *testing.T) {
	want := map[int]int{12: 128, 15: 160, 18: 192, 21: 224, 24: 256}
	for words, bits := range want {
		got, err := EntropyBits(words)
		if err != nil || got != bits {
			t.Errorf("EntropyBits(%d) = %d, %v; want %d", words, got, err, bits)
		}
	}
}

func TestKeypairFromMnemonic(t *testing.T) {
	k1, err := KeypairFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatalf("KeypairFromMnemonic: %v", err)
	}
	if len(k1) != 64 {
		t.Fatalf("key length = %d, want 64", len(k1))
	}

	k2, err := KeypairFromMnemonic(testMnemonic, "")
	if err != nil {
		t.Fatal(err)
	}
	if k1.String() != k2.String() {
		t.Error("derivation is not deterministic")
	}

	withPass, err := KeypairFromMnemonic(testMnemonic, "TREZOR")
	if err != nil {
		t.Fatal(err)
	}
	if withPass.PublicKey().Equals(k1.PublicKey()) {
		t.Error("passphrase should change the derived key")
	}
}

func TestKeypairFromMnemonic_Invalid(t *testing.T) {
	if _, err := KeypairFromMnemonic("not a valid mnemonic phrase at all", ""); err == nil {
		t.Fatal("expected error for invalid mnemonic")
	}
}
