package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/gabapcia/blockscope/internal/explorer"
	"github.com/gabapcia/blockscope/internal/ledger"
	"github.com/gabapcia/blockscope/internal/search"
)

// printer renders command output as aligned plain text. It is safe for
// concurrent use.
type printer struct {
	mu  sync.Mutex
	out io.Writer
}

func newPrinter(out io.Writer) *printer {
	if out == nil {
		out = os.Stdout
	}

	return &printer{out: out}
}

func (p *printer) write(fn func(tw *tabwriter.Writer)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fn(tw)
	_ = tw.Flush()
}

func (p *printer) error(err error) {
	p.write(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "error: %v\n", err)
	})
}

func (p *printer) outcome(o search.Outcome) {
	p.write(func(tw *tabwriter.Writer) {
		if o.Err != nil {
			fmt.Fprintf(tw, "#%d %q (%s): error: %v\n", o.Generation, o.Query.Raw, o.Query.Kind, o.Err)
			return
		}

		fmt.Fprintf(tw, "#%d %q (%s): %d result(s)\n", o.Generation, o.Query.Raw, o.Query.Kind, o.Results.Total)
		writeResults(tw, o.Results)
	})
}

func (p *printer) results(rs search.ResultSet) {
	p.write(func(tw *tabwriter.Writer) {
		if rs.IsEmpty() {
			fmt.Fprintln(tw, "no results")
			return
		}

		writeResults(tw, rs)
	})
}

func writeResults(tw *tabwriter.Writer, rs search.ResultSet) {
	for _, bucket := range [][]search.Result{rs.Blocks, rs.Transactions, rs.Addresses, rs.Validators} {
		for _, r := range bucket {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", r.Kind, r.ID, r.Title, r.Subtitle)
		}
	}
}

func (p *printer) networkSwitch(ev explorer.NetworkSwitch) {
	p.write(func(tw *tabwriter.Writer) {
		if ev.Err != nil {
			fmt.Fprintf(tw, "network %s -> %s (%s): window unavailable: %v\n", ev.From, ev.To, ev.Endpoint, ev.Err)
			return
		}

		fmt.Fprintf(tw, "network %s -> %s (%s): %d block(s) up to height %d\n",
			ev.From, ev.To, ev.Endpoint, len(ev.Window.Blocks), ev.Window.HeadHeight())
	})
}

func (p *printer) blocks(blocks []ledger.Block, total int) {
	p.write(func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "HEIGHT\tHASH\tTIME\tTXS\tPROPOSER")
		for _, b := range blocks {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", b.Height, b.Hash, b.Timestamp().UTC().Format("2006-01-02 15:04:05"), b.NumTx, b.Proposer)
		}
		fmt.Fprintf(tw, "%d of %d block(s)\n", len(blocks), total)
	})
}

// bucketRows holds one value per bucket for each column, oldest first.
type bucketRows struct {
	blocks []uint64
	txs    []uint64
	volume []uint64
}

func (p *printer) buckets(unit string, rows bucketRows, types map[string]int) {
	p.write(func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "BUCKET (%s ago)\tBLOCKS\tTXS\tVOLUME\n", unit)
		for i := range rows.blocks {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\n", len(rows.blocks)-1-i, rows.blocks[i], rows.txs[i], rows.volume[i])
		}

		if len(types) == 0 {
			return
		}

		names := make([]string, 0, len(types))
		for name := range types {
			names = append(names, name)
		}
		slices.Sort(names)

		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s=%d", name, types[name]))
		}
		fmt.Fprintf(tw, "message types: %s\n", strings.Join(parts, " "))
	})
}

func (p *printer) networks(names []string, active string) {
	p.write(func(tw *tabwriter.Writer) {
		for _, name := range names {
			marker := " "
			if name == active {
				marker = "*"
			}
			fmt.Fprintf(tw, "%s %s\n", marker, name)
		}
	})
}
