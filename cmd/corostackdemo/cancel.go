// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/joeycumines/go-corostack"
)

var cancelCmd = cli.Command{
	Name:  "cancel",
	Usage: "demonstrate cooperative cancellation of a suspended coroutine",
	Flags: append([]cli.Flag{
		&cli.IntFlag{
			Name:  "resumes",
			Usage: "number of times to resume before closing",
			Value: 3,
		},
	}, commonFlags...),
	Action: runCancel,
}

func runCancel(c *cli.Context) error {
	resumes := c.Int("resumes")

	stack := make([]byte, 64*1024)
	co := corostack.New(stack, countAndAcknowledgeCancel, coroOptions(c)...)

	for i := 0; i < resumes; i++ {
		v, ok := co.Resume().Yielded()
		if !ok {
			fmt.Fprintln(c.App.Writer, "coroutine completed before it was closed")
			return nil
		}
		fmt.Fprintf(c.App.Writer, "received: %s\n", v)
	}

	err := co.Close()
	if errors.Is(err, corostack.ErrCanceled) {
		fmt.Fprintln(c.App.Writer, "coroutine acknowledged cancellation and cleaned up")
		return nil
	}
	return err
}

// countAndAcknowledgeCancel yields a running count until canceled, then
// reports that it saw the cancellation before propagating it.
func countAndAcknowledgeCancel(c *corostack.Control[string, struct{}]) (corostack.Finished[struct{}], error) {
	for i := 0; ; i++ {
		next, err := c.Yield(fmt.Sprintf("tick %d", i))
		if err != nil {
			return corostack.Finished[struct{}]{}, err
		}
		c = next
	}
}
