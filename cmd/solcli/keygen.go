package main

import (
	"github.com/spf13/cobra"

	"github.com/AlexZinkM/solcli/internal/config"
	"github.com/AlexZinkM/solcli/internal/output"
	"github.com/AlexZinkM/solcli/internal/wallet"
	"github.com/AlexZinkM/solcli/solana"
)

func keyGenCmd(g *globalFlags) *cobra.Command {
	var (
		opts             solana.GenerateOptions
		promptPassphrase bool
		encrypt          bool
	)

	cmd := &cobra.Command{
		Use:   "key-gen",
		Short: "Generate mnemonic keypairs and append them to a file",
		Long: `Generate BIP-39 mnemonic keypairs. Each keypair is appended to the output
file as one JSON line holding the address, the 64-byte keypair and the seed
phrase. The phrase and address are printed once.

Example:
  solcli key-gen --words 24 --count 3
  solcli key-gen --new --encrypt --qr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reject a bad length before prompting for anything
			if _, err := wallet.EntropyBits(opts.WordCount); err != nil {
				return err
			}
			if opts.OutputPath == "" {
				opts.OutputPath = config.GetKeypairFile()
			}
			if promptPassphrase {
				passphrase, err := config.PromptSecret("BIP-39 passphrase: ")
				if err != nil {
					return err
				}
				opts.Passphrase = string(passphrase)
				clear(passphrase)
			}
			if encrypt {
				password, err := config.PromptPassword(true)
				if err != nil {
					return err
				}
				defer clear(password)
				opts.Password = password
			}

			resp, err := solana.GenerateKeypairs(opts)
			if err != nil {
				return err
			}
			return render(g, resp, output.RenderGenerate)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.OutputPath, "output", "o", "", "Keypair file to append to (default KEYPAIR_FILE)")
	f.IntVarP(&opts.WordCount, "words", "w", 12, "Mnemonic length: 12, 15, 18, 21 or 24")
	f.StringVar(&opts.Passphrase, "passphrase", "", "BIP-39 passphrase")
	f.BoolVar(&promptPassphrase, "prompt-passphrase", false, "Read the BIP-39 passphrase from the terminal")
	f.IntVarP(&opts.Count, "count", "n", 1, "Number of keypairs to generate")
	f.BoolVar(&opts.Reset, "new", false, "Delete the output file first")
	f.BoolVar(&encrypt, "encrypt", false, "Seal keys with a password")
	f.BoolVar(&opts.QR, "qr", false, "Print a QR code of each address")
	cmd.MarkFlagsMutuallyExclusive("passphrase", "prompt-passphrase")
	return cmd
}
