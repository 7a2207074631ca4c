package wallet

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlexZinkM/solcli/internal/crypto"
	"github.com/AlexZinkM/solcli/internal/log"
	"github.com/AlexZinkM/solcli/internal/model"

	"github.com/gagliardetto/solana-go"
)

const maxLineSize = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrNoRecords is returned when a keypair file holds no records
var ErrNoRecords = errors.New("keypair file has no records")

// PasswordFunc supplies the password for sealed records on demand.
// The caller of LoadPrivateKey zeroes the returned slice.
type PasswordFunc func() ([]byte, error)

// Selector picks one record out of a keypair file. A non-empty Address
// wins over Index.
type Selector struct {
	Address string
	Index   int
}

// NewRecord builds the file record for a generated keypair. With a
// non-empty password the private key and phrase are sealed.
func NewRecord(key solana.PrivateKey, mnemonic string, password []byte) (*model.KeypairRecord, error) {
	rec := &model.KeypairRecord{
		Address:   key.PublicKey().String(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if len(password) == 0 {
		rec.Keypair = model.KeyBytes(append([]byte(nil), key...))
		rec.SeedPhrase = mnemonic
		return rec, nil
	}

	sealed, err := crypto.SealWallet(&model.WalletData{
		PrivateKey: key,
		SeedPhrase: mnemonic,
	}, password)
	if err != nil {
		return nil, fmt.Errorf("failed to seal keypair: %w", err)
	}
	rec.Sealed = sealed
	return rec, nil
}

// AppendRecords appends one JSON line per record, creating the file (0600) if needed.
func AppendRecords(path string, records ...*model.KeypairRecord) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
	}
	defer clear(buf.Bytes())

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open keypair file: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write keypair file: %w", err)
	}
	return f.Close()
}

// RemoveFile deletes a keypair file. It reports whether a file was removed;
// a missing file is not an error.
func RemoveFile(path string) (bool, error) {
	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete keypair file: %w", err)
	}
	return true, nil
}

// ReadRecords reads every record of a JSON-lines keypair file.
func ReadRecords(path string) ([]model.KeypairRecord, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	defer clear(data)

	var records []model.KeypairRecord
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		var rec model.KeypairRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read keypair file: %w", err)
	}
	return records, nil
}

// ReadAddresses lists the addresses stored in a keypair file. Both the
// JSON-lines format and a solana-keygen array file are understood.
func ReadAddresses(path string) ([]string, error) {
	keygen, err := isKeygenFile(path)
	if err != nil {
		return nil, err
	}
	if keygen {
		key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read keygen file: %w", err)
		}
		defer clear(key)
		if err := checkKey(key, ""); err != nil {
			return nil, err
		}
		return []string{key.PublicKey().String()}, nil
	}

	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	addresses := make([]string, 0, len(records))
	for _, rec := range records {
		addresses = append(addresses, rec.Address)
	}
	return addresses, nil
}

// LoadPrivateKey loads the signing key chosen by sel. Sealed records call
// password. The returned key must be cleared by the caller.
func LoadPrivateKey(path string, sel Selector, password PasswordFunc) (solana.PrivateKey, error) {
	keygen, err := isKeygenFile(path)
	if err != nil {
		return nil, err
	}
	if keygen {
		key, err := solana.PrivateKeyFromSolanaKeygenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read keygen file: %w", err)
		}
		if err := checkKey(key, sel.Address); err != nil {
			clear(key)
			return nil, err
		}
		return key, nil
	}

	records, err := ReadRecords(path)
	if err != nil {
		return nil, err
	}
	rec, err := selectRecord(records, sel)
	if err != nil {
		return nil, err
	}
	log.Wallet.Debug().Str("address", rec.Address).Bool("sealed", rec.IsSealed()).Msg("loading keypair")

	var key solana.PrivateKey
	if rec.IsSealed() {
		if password == nil {
			return nil, errors.New("keypair is sealed and no password source was given")
		}
		pw, err := password()
		if err != nil {
			return nil, err
		}
		defer clear(pw)

		walletData, err := crypto.OpenWallet(rec.Sealed, pw)
		if err != nil {
			return nil, fmt.Errorf("failed to open sealed keypair: %w", err)
		}
		key = solana.PrivateKey(walletData.PrivateKey)
	} else {
		key = solana.PrivateKey(append([]byte(nil), rec.Keypair...))
		clear(rec.Keypair)
	}

	if err := checkKey(key, rec.Address); err != nil {
		clear(key)
		return nil, err
	}
	return key, nil
}

func selectRecord(records []model.KeypairRecord, sel Selector) (*model.KeypairRecord, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if sel.Address != "" {
		for i := range records {
			if records[i].Address == sel.Address {
				return &records[i], nil
			}
		}
		return nil, fmt.Errorf("no keypair for address %s", sel.Address)
	}
	if sel.Index < 0 || sel.Index >= len(records) {
		return nil, fmt.Errorf("keypair index %d out of range (file has %d)", sel.Index, len(records))
	}
	return &records[sel.Index], nil
}

// checkKey verifies length and, when address is set, that the key derives it
func checkKey(key solana.PrivateKey, address string) error {
	if len(key) != 64 {
		return fmt.Errorf("invalid private key length %d", len(key))
	}
	if address != "" && key.PublicKey().String() != address {
		return errors.New("private key does not match address")
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("keypair file %s does not exist", path)
		}
		return nil, fmt.Errorf("failed to read keypair file: %w", err)
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

// isKeygenFile reports whether path holds a bare solana-keygen JSON array
func isKeygenFile(path string) (bool, error) {
	data, err := readFile(path)
	if err != nil {
		return false, err
	}
	defer clear(data)
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '[', nil
}
