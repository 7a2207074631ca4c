package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/AlexZinkM/solcli/internal/model"
)

func init() {
	DisableColors()
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	resp := &model.TransferResponse{Signature: "sig", To: "to", Lamports: 5, SOL: "0.000000005", Confirmed: true, Attempts: 2}
	if err := RenderJSON(&buf, resp); err != nil {
		t.Fatal(err)
	}
	var back map[string]any
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if back["signature"] != "sig" || back["confirmed"] != true {
		t.Errorf("decoded = %v", back)
	}
	if _, ok := back["from"]; ok {
		t.Error("empty from should be omitted")
	}
}

func TestRenderBalances(t *testing.T) {
	var buf bytes.Buffer
	RenderBalances(&buf, []model.BalanceResponse{{Address: "A", SOL: "1.000000000"}})
	if got := buf.String(); got != "A 1.000000000 SOL\n" {
		t.Errorf("single balance = %q", got)
	}

	buf.Reset()
	RenderBalances(&buf, []model.BalanceResponse{
		{Address: "A", SOL: "1.000000000", Fiat: &model.FiatValue{Currency: "usd", Rate: "150.00", Amount: "150.00"}},
		{Address: "B", SOL: "0.500000000", Fiat: &model.FiatValue{Currency: "usd", Rate: "150.00", Amount: "75.00"}},
	})
	out := buf.String()
	for _, want := range []string{"1 SOL = 150.00 usd", "A", "B", "75.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "A ") > strings.Index(out, "B ") {
		t.Error("rows out of order")
	}
}

func TestRenderTransfer(t *testing.T) {
	var buf bytes.Buffer
	RenderTransfer(&buf, &model.TransferResponse{Signature: "5ig", From: "F", To: "T", SOL: "1.000000000", Commitment: "finalized", Attempts: 120})
	out := buf.String()
	if !strings.Contains(out, "5ig") || !strings.Contains(out, "not confirmed at finalized commitment") {
		t.Errorf("output = %q", out)
	}
}

func TestRenderGenerate(t *testing.T) {
	var buf bytes.Buffer
	RenderGenerate(&buf, &model.GenerateResponse{
		File:     "keys.jsonl",
		Reset:    true,
		Keypairs: []model.GeneratedKeypair{{Address: "Addr", SeedPhrase: "abandon ability"}},
	})
	out := buf.String()
	for _, want := range []string{"Deleted keys.jsonl", "Public key: Addr", "Seed phrase: abandon ability", "1 keypair(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf)
	p.Tick(1)
	p.Tick(2)
	p.Done()
	if buf.String() != "..\n" {
		t.Errorf("progress = %q", buf.String())
	}

	buf.Reset()
	NewProgress(&buf).Done()
	if buf.Len() != 0 {
		t.Errorf("no ticks should print nothing, got %q", buf.String())
	}

	buf.Reset()
	RenderError(&buf, errors.New("boom"))
	if buf.String() != "Error: boom\n" {
		t.Errorf("error line = %q", buf.String())
	}
}
