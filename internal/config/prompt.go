package config

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// PromptSecret prompts the user in the terminal and reads input without echo.
// Caller must zero the returned slice after use.
func PromptSecret(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run interactively to enter secrets")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return raw, nil
}

// PromptPassword asks for a non-empty password. With confirm set it asks
// twice and requires both entries to match.
func PromptPassword(confirm bool) ([]byte, error) {
	pw, err := PromptSecret("Enter wallet password: ")
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	if !confirm {
		return pw, nil
	}

	again, err := PromptSecret("Repeat wallet password: ")
	if err != nil {
		clear(pw)
		return nil, err
	}
	defer clear(again)
	if string(again) != string(pw) {
		clear(pw)
		return nil, errors.New("passwords do not match")
	}
	return pw, nil
}
