package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gabapcia/blockscope/internal/explorer"
	"github.com/gabapcia/blockscope/internal/pkg/logger"
	"github.com/gabapcia/blockscope/internal/search"

	"github.com/urfave/cli/v3"
)

const networkDirective = ":network"

// serveCommand returns a CLI command that keeps the window cache refreshed and
// resolves every line read from stdin as a debounced search. A line of the
// form ":network <name>" switches the active network instead.
//
// Usage example:
//
//	blockscope serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func serveCommand(ex explorer.Service) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Keeps the block window fresh and answers searches typed on stdin.",
		Usage:       "Type a height, hash or address per line. Use ':network <name>' to switch networks.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := ex.Start(ctx); err != nil {
				return err
			}
			defer ex.Close()

			return serve(ctx, ex, c.Root().Reader, newPrinter(c.Root().Writer))
		},
	}
}

func serve(ctx context.Context, ex explorer.Service, in io.Reader, p *printer) error {
	lines := scanLines(ctx, in)
	outcomes := ex.Outcomes()
	switches := ex.Watch()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				lines = nil
				continue
			}

			handleLine(ctx, ex, p, line)
		case o := <-outcomes:
			p.outcome(o)
		case ev := <-switches:
			p.networkSwitch(ev)
		}
	}
}

func handleLine(ctx context.Context, ex explorer.Service, p *printer, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}

	if name, ok := strings.CutPrefix(line, networkDirective); ok {
		if err := ex.SwitchNetwork(ctx, strings.TrimSpace(name)); err != nil {
			p.error(err)
		}
		return
	}

	go func() {
		_, err := ex.Search(ctx, line)
		if err != nil && !errors.Is(err, search.ErrSuperseded) && !errors.Is(err, context.Canceled) {
			logger.Debug(ctx, "search failed", "query", line, "error", err)
		}
	}()
}

// scanLines streams the lines of r until EOF or ctx is done.
func scanLines(ctx context.Context, r io.Reader) <-chan string {
	if r == nil {
		r = os.Stdin
	}

	lines := make(chan string)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			logger.Error(ctx, "could not read input", "error", err)
		}
	}()

	return lines
}
