// Command salesman prints the minimum-cost closed tour of a weighted graph.
//
// Usage:
//
//	salesman [-h] [-v|-d|-s] [--strategy bnb] [--workers 4] <graph-file>
//
// The graph file holds one edge per line as "<id>;<weight>;<id>".
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/salesman/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	stop()

	if err != nil {
		code := cli.ExitUsage
		var ee *cli.ExitError
		if errors.As(err, &ee) {
			code = ee.Code
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(code)
	}
}
