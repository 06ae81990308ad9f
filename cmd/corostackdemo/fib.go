// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/joeycumines/go-corostack"
)

var fibCmd = cli.Command{
	Name:  "fib",
	Usage: "stream a bounded Fibonacci sequence from a coroutine",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of terms to print",
			Value: 10,
		},
	}, commonFlags...),
	Action: runFib,
}

func runFib(c *cli.Context) error {
	count := c.Int("count")

	stack := make([]byte, 64*1024)
	co := corostack.New(stack, fibonacci, coroOptions(c)...)
	defer co.Close()

	for i := 0; i < count; i++ {
		v, ok := co.Resume().Yielded()
		if !ok {
			break
		}
		fmt.Fprintln(c.App.Writer, v)
	}
	return nil
}

// fibonacci yields successive Fibonacci terms forever, until canceled.
func fibonacci(c *corostack.Control[int, struct{}]) (corostack.Finished[struct{}], error) {
	a, b := 0, 1
	for {
		next, err := c.Yield(a)
		if err != nil {
			return corostack.Finished[struct{}]{}, err
		}
		c = next
		a, b = b, a+b
	}
}
