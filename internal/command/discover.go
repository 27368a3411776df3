// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/chaosaws/chaosaws/discovery"
	"github.com/chaosaws/chaosaws/internal/output"
)

// activityView is the marshalable slice of an Activity; the function
// reference itself has no JSON form.
type activityView struct {
	Name        string `json:"name"`
	Module      string `json:"module"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

func discoverCommandBuilder() *cli.Command {
	flags := append(outputFlags(),
		&cli.StringFlag{
			Name:    "kind",
			Aliases: []string{"k"},
			Usage:   "only list activities of this kind: action or probe",
		},
		&cli.StringFlag{
			Name:    "module",
			Aliases: []string{"m"},
			Usage:   "only list activities of this module, e.g. ec2",
		},
	)

	return &cli.Command{
		Name:  "discover",
		Usage: "list the available actions and probes",
		Flags: flags,
		Action: func(_ context.Context, cmd *cli.Command) error {
			kind := cmd.String("kind")
			module := cmd.String("module")

			var views []activityView
			for _, a := range discovery.Discover() {
				if kind != "" && string(a.Kind) != kind {
					continue
				}
				if module != "" && a.Module != module {
					continue
				}
				views = append(views, activityView{
					Name:        a.Name,
					Module:      a.Module,
					Kind:        string(a.Kind),
					Description: a.Description,
				})
			}

			return output.Spit(cmd.Root().Writer, views,
				cmd.String("output"), cmd.String("query"))
		},
	}
}
