package solana

import (
	"context"

	"github.com/AlexZinkM/solcli/internal/client"
	"github.com/AlexZinkM/solcli/internal/common"
	"github.com/AlexZinkM/solcli/internal/model"

	"github.com/gagliardetto/solana-go/rpc"
	"golang.org/x/sync/errgroup"
)

// GetClusterInfo reads the node version and the Clock sysvar concurrently.
func GetClusterInfo(ctx context.Context, c *client.SolanaClient) (*model.ClusterInfo, error) {
	var (
		version *rpc.GetVersionResult
		clock   *client.Clock
		slot    uint64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		version, err = c.GetVersion(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		clock, slot, err = c.GetClock(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.ClusterInfo{
		RPCURL:        c.RPCURL(),
		Version:       version.SolanaCore,
		FeatureSet:    version.FeatureSet,
		Slot:          slot,
		Epoch:         clock.Epoch,
		UnixTimestamp: clock.UnixTimestamp,
		Time:          common.FormatUnixTime(clock.UnixTimestamp),
	}, nil
}
