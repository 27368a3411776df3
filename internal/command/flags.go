// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import "github.com/urfave/cli/v3"

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: json or yaml",
			Value:   "json",
		},
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"q"},
			Usage:   "gjson query to narrow the output",
		},
	}
}

func sessionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region to resolve the session against",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
				cli.EnvVar("AWS_DEFAULT_REGION"),
			),
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "shared config profile to resolve credentials from",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_PROFILE"),
			),
		},
	}
}
