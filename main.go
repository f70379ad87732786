// shiftcrack - encrypt, decrypt and crack shift-cipher text files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shiftcrack/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cmd.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "shiftcrack: %v\n", err)
		os.Exit(1)
	}
}
