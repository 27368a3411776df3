// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package fis

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	fisv2 "github.com/aws/aws-sdk-go-v2/service/fis"
)

// GetExperiment returns information about the given experiment.
func GetExperiment(ctx context.Context, api API, experimentID string) (*fisv2.GetExperimentOutput, error) {
	if experimentID == "" {
		return nil, errors.New("you must pass a valid experiment id, id provided was empty")
	}
	out, err := api.GetExperiment(ctx, &fisv2.GetExperimentInput{
		Id: awsv2.String(experimentID),
	})
	if err != nil {
		return nil, fmt.Errorf("get experiment failed: %w", err)
	}
	return out, nil
}
