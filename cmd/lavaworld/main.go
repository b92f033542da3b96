// Command lavaworld answers connectivity queries between rectangular islands.
//
//	lavaworld < input.txt
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lavaworld/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRootCommand(commands.Deps{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "lavaworld:", err)
		stop()
		os.Exit(1)
	}
}
