// SPDX-License-Identifier: MIT

// Command crntk analyses chemical reaction networks: structure, deficiency
// and semi-positive conservation laws.
//
//	crntk analyze network.txt
//	crntk claws -o json network.txt
//	crntk serve --config crntk.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "crntk:", err)
		stop()
		os.Exit(1)
	}
}
