package peek

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peekdb/peekdb/internal/ratelimit"
	"github.com/peekdb/peekdb/internal/render"
)

const minWatchInterval = 500 * time.Millisecond

// WatchRowsWithParams re-renders the table on a rate-limited loop until
// the context is cancelled. The limiter keeps a tight interval from
// hammering the engine with back-to-back full scans.
func WatchRowsWithParams(ctx context.Context, dbFile, table string, interval time.Duration) error {
	if interval < minWatchInterval {
		interval = minWatchInterval
	}

	store, err := openStore(dbFile)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	limiter := ratelimit.NewInterval("watch", interval)
	for {
		if err := limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		rows, err := store.GetRows(table)
		if err != nil {
			return err
		}

		fmt.Fprintf(stdout, "--- %s (%s) ---\n", table, time.Now().Format(time.TimeOnly))
		if len(rows) == 0 {
			fmt.Fprintln(stdout, "(table not found)")
			continue
		}
		out, err := render.Rows(rows, render.FormatTable)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, out)
	}
}
