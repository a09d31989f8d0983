// Command astddl renders dialect-correct DDL statements.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/zoobzio/astddl/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.Execute(ctx)
}
