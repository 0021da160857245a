// Command parcopy sequentializes parallel copy batches read from YAML files
// and inspects the control-flow graphs they come from.
//
// Usage:
//
//	parcopy sequentialize [--verify] [--format text|yaml] <batches.yaml>
//	parcopy cycles <batches.yaml>
//	parcopy dfs [--format text|yaml] <graph.yaml>
//
// A file argument of "-" reads standard input. Settings come from the
// PARCOPY_* environment variables and may be overridden by flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "parcopy: %v\n", err)
		stop()
		os.Exit(1)
	}
}
