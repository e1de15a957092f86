package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/blockscope/internal/explorer"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the blockscope CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Keeps the window fresh and answers searches typed on stdin.
//   - `search`: Resolves a single query.
//   - `blocks`: Lists cached blocks in a height range.
//   - `activity`: Buckets cached blocks and transactions over time.
//   - `networks`: Lists the configured networks.
func Run(ctx context.Context, ex explorer.Service) error {
	return newApp(ex, os.Stdin, os.Stdout).Run(ctx, os.Args)
}

func newApp(ex explorer.Service, in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "blockscope",
		Description:           "Command-line explorer for a Canopy-style chain backed by a bounded window cache.",
		Usage:                 "blockscope [command] [flags]",
		Reader:                in,
		Writer:                out,
		Commands: []*cli.Command{
			serveCommand(ex),
			searchCommand(ex),
			blocksCommand(ex),
			activityCommand(ex),
			networksCommand(ex),
		},
	}
}

func networkFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "network",
		Usage: "Network to query instead of the active one",
	}
}

// useNetwork switches to the network named by the --network flag, if any.
func useNetwork(ctx context.Context, ex explorer.Service, c *cli.Command) error {
	name := c.String("network")
	if name == "" || name == ex.Network() {
		return nil
	}

	return ex.SwitchNetwork(ctx, name)
}
