package scripting

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Console reads newline-delimited Lua snippets from r and runs each
// against bridge, writing a one-line result or error to w. It stops when
// ctx is canceled or r reaches EOF.
func Console(ctx context.Context, bridge *Bridge, r io.Reader, w io.Writer) error {
	g, ctx := errgroup.WithContext(ctx)
	lines := make(chan string)

	g.Go(func() error {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return scanner.Err()
	})

	g.Go(func() error {
		for {
			select {
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				if err := bridge.Run(line); err != nil {
					msg, _, _ := strings.Cut(err.Error(), "\n")
					fmt.Fprintln(w, msg)
					continue
				}
				fmt.Fprintln(w, "ok")
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	return g.Wait()
}
