package solana

import (
	"fmt"

	"github.com/AlexZinkM/solcli/internal/log"
	"github.com/AlexZinkM/solcli/internal/model"
	"github.com/AlexZinkM/solcli/internal/wallet"

	"github.com/skip2/go-qrcode"
)

// GenerateOptions controls a key-gen run
type GenerateOptions struct {
	OutputPath string
	WordCount  int
	Passphrase string
	Count      int
	Reset      bool
	// Password seals every record when non-empty (caller should zero it after use)
	Password []byte
	QR       bool
}

// GenerateKeypairs derives Count mnemonic keypairs and appends them to
// OutputPath, one JSON line each.
func GenerateKeypairs(opts GenerateOptions) (*model.GenerateResponse, error) {
	// Check parameters before touching the file
	if _, err := wallet.EntropyBits(opts.WordCount); err != nil {
		return nil, err
	}
	if opts.Count < 1 {
		return nil, fmt.Errorf("count must be at least 1")
	}
	if opts.OutputPath == "" {
		return nil, fmt.Errorf("output file is required")
	}

	resp := &model.GenerateResponse{File: opts.OutputPath}
	if opts.Reset {
		removed, err := wallet.RemoveFile(opts.OutputPath)
		if err != nil {
			return nil, err
		}
		resp.Reset = removed
	}

	for i := 0; i < opts.Count; i++ {
		mnemonic, err := wallet.GenerateMnemonic(opts.WordCount)
		if err != nil {
			return nil, err
		}
		key, err := wallet.KeypairFromMnemonic(mnemonic, opts.Passphrase)
		if err != nil {
			return nil, err
		}

		rec, err := wallet.NewRecord(key, mnemonic, opts.Password)
		clear(key)
		if err != nil {
			return nil, err
		}
		// Append one at a time so a failure keeps earlier keypairs
		if err := wallet.AppendRecords(opts.OutputPath, rec); err != nil {
			return nil, err
		}
		log.Wallet.Debug().Str("address", rec.Address).Bool("sealed", rec.IsSealed()).Msg("keypair appended")

		generated := model.GeneratedKeypair{
			Address:    rec.Address,
			SeedPhrase: mnemonic,
			Sealed:     rec.IsSealed(),
		}
		if opts.QR {
			generated.QR, err = generateQRCode(rec.Address)
			if err != nil {
				return nil, err
			}
		}
		resp.Keypairs = append(resp.Keypairs, generated)
	}

	return resp, nil
}

// generateQRCode renders the address as a QR code made of terminal blocks
func generateQRCode(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	return qr.ToSmallString(false), nil
}
