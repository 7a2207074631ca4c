package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/AlexZinkM/solcli/internal/model"
)

func init() {
	// Full-strength scrypt makes every test take a second and 256MB.
	scryptN = 1 << 10
}

func TestSealOpen(t *testing.T) {
	data := &model.WalletData{
		PrivateKey: bytes.Repeat([]byte{7}, 64),
		SeedPhrase: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
	}

	sealed, err := SealWallet(data, []byte("dev"))
	if err != nil {
		t.Fatalf("SealWallet: %v", err)
	}
	if sealed.Salt == "" || sealed.Nonce == "" || sealed.CipherText == "" {
		t.Fatalf("sealed key has empty fields: %+v", sealed)
	}

	opened, err := OpenWallet(sealed, []byte("dev"))
	if err != nil {
		t.Fatalf("OpenWallet: %v", err)
	}
	if !bytes.Equal(opened.PrivateKey, data.PrivateKey) {
		t.Error("private key mismatch after round trip")
	}
	if opened.SeedPhrase != data.SeedPhrase {
		t.Error("seed phrase mismatch after round trip")
	}
}

func TestOpenWallet_WrongPassword(t *testing.T) {
	sealed, err := SealWallet(&model.WalletData{PrivateKey: []byte{1, 2, 3}}, []byte("right"))
	if err != nil {
		t.Fatalf("SealWallet: %v", err)
	}
	if _, err := OpenWallet(sealed, []byte("wrong")); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("error = %v, want ErrInvalidPassword", err)
	}
}

func TestSealWallet_UniqueSaltAndNonce(t *testing.T) {
	data := &model.WalletData{PrivateKey: []byte{1}}
	a, err := SealWallet(data, []byte("pw"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := SealWallet(data, []byte("pw"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Salt == b.Salt || a.Nonce == b.Nonce || a.CipherText == b.CipherText {
		t.Error("two seals of the same data should differ")
	}
}

func TestSealWallet_EmptyPassword(t *testing.T) {
	if _, err := SealWallet(&model.WalletData{}, nil); err == nil {
		t.Fatal("expected error for empty password")
	}
}

func TestOpenWallet_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		sealed *model.SealedKey
	}{
		{"nil", nil},
		{"bad salt", &model.SealedKey{Salt: "%%%", Nonce: "AAAAAAAAAAAAAAAA", CipherText: ""}},
		{"short nonce", &model.SealedKey{Salt: "", Nonce: "AAAA", CipherText: ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := OpenWallet(tt.sealed, []byte("pw")); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
