package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/AlexZinkM/solcli/internal/config"
	"github.com/AlexZinkM/solcli/internal/output"
	"github.com/AlexZinkM/solcli/solana"
)

// commandContext bounds a query by the request timeout and cancels on Ctrl+C
func commandContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithTimeout(ctx, config.Get().RequestTimeout)
	return ctx, func() {
		cancel()
		stop()
	}
}

// submitContext cancels on Ctrl+C only. Each RPC call is bounded by the
// request timeout in PollOptions and polling ends when the attempts run out.
func submitContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// pollOptions builds the confirmation budget from config. Progress dots
// go to stderr and only when it is a terminal.
func pollOptions(g *globalFlags, progress *output.Progress) solana.PollOptions {
	cfg := config.Get()
	opts := solana.PollOptions{
		Interval:       cfg.ConfirmInterval,
		MaxAttempts:    cfg.ConfirmMaxAttempts,
		RequestTimeout: cfg.RequestTimeout,
	}
	if !g.jsonOutput && progress != nil && term.IsTerminal(int(os.Stderr.Fd())) {
		opts.OnAttempt = progress.Tick
	}
	return opts
}
