// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package main

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/urfave/cli/v2"

	"github.com/joeycumines/go-corostack"
	"github.com/joeycumines/go-corostack/corologiface"
)

var commonFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  "verbose",
		Usage: "set the log level to debug (corostack itself logs only the finalizer-backstop warning)",
	},
	&cli.BoolFlag{
		Name:  "disable-stack-guard",
		Usage: "expert-only: skip the stack-guard widening around each switch",
	},
}

// coroOptions builds the corostack.Option slice shared by every subcommand,
// from the common flag set.
func coroOptions(c *cli.Context) []corostack.Option {
	level := logiface.LevelWarning
	if c.Bool("verbose") {
		level = logiface.LevelDebug
	}

	l := logiface.New[*stumpy.Event](
		stumpy.WithStumpy(stumpy.WithWriter(c.App.ErrWriter)),
		logiface.WithLevel[*stumpy.Event](level),
	)

	return []corostack.Option{
		corostack.WithLogger(corologiface.New(l.Logger())),
		corostack.WithStackGuardDisabled(c.Bool("disable-stack-guard")),
	}
}
