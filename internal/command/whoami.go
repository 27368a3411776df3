// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	stsv2 "github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/urfave/cli/v3"

	"github.com/chaosaws/chaosaws"
	"github.com/chaosaws/chaosaws/internal/output"
)

// identityAPI lists the STS operations whoami invokes.
type identityAPI interface {
	GetCallerIdentity(ctx context.Context, params *stsv2.GetCallerIdentityInput,
		optFns ...func(*stsv2.Options)) (*stsv2.GetCallerIdentityOutput, error)
}

// newIdentityAPI is swapped out in tests.
var newIdentityAPI = func(cfg awsv2.Config) identityAPI {
	return stsv2.NewFromConfig(cfg)
}

type identityView struct {
	Account string `json:"account"`
	ARN     string `json:"arn"`
	UserID  string `json:"user_id"`
	Region  string `json:"region"`
}

func whoamiCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the caller identity of the resolved session",
		Flags: append(outputFlags(), sessionFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := chaosaws.NewConfig(ctx, &chaosaws.Configuration{
				Region:      cmd.String("region"),
				ProfileName: cmd.String("profile"),
			}, nil)
			if err != nil {
				return err
			}

			identity, err := newIdentityAPI(cfg).GetCallerIdentity(ctx,
				&stsv2.GetCallerIdentityInput{})
			if err != nil {
				return err
			}

			return output.Spit(cmd.Root().Writer, identityView{
				Account: awsv2.ToString(identity.Account),
				ARN:     awsv2.ToString(identity.Arn),
				UserID:  awsv2.ToString(identity.UserId),
				Region:  cfg.Region,
			}, cmd.String("output"), cmd.String("query"))
		},
	}
}
