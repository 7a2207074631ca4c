package model

// GenerateResponse represents response for `solcli key-gen`
type GenerateResponse struct {
	File     string             `json:"file"`
	Reset    bool               `json:"reset"`
	Keypairs []GeneratedKeypair `json:"keypairs"`
}

// GeneratedKeypair is the printable part of a freshly generated record.
// The seed phrase is shown once even when the record was sealed.
type GeneratedKeypair struct {
	Address    string `json:"address"`
	SeedPhrase string `json:"seedPhrase,omitempty"`
	Sealed     bool   `json:"sealed"`
	QR         string `json:"-"`
}
