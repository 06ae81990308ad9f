// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

// Command corostackdemo exercises corostack from the outside: a bounded
// Fibonacci generator driven entirely by Resume/Close, and a cooperative
// cancellation scenario that stops a coroutine mid-suspension.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "corostackdemo",
		Usage: "demonstrates the corostack stackful coroutine package",
		Commands: []*cli.Command{
			&fibCmd,
			&cancelCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
