// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package fis

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	fisv2 "github.com/aws/aws-sdk-go-v2/service/fis"
	"github.com/google/uuid"

	"github.com/chaosaws/chaosaws/internal/log"
)

// StartExperiment starts a FIS experiment from the given template. A
// random client token is generated when none is provided.
func StartExperiment(ctx context.Context, api API, templateID, clientToken string,
	tags map[string]string) (*fisv2.StartExperimentOutput, error) {
	if templateID == "" {
		return nil, errors.New("you must pass a valid experiment template id, id provided was empty")
	}
	if clientToken == "" {
		clientToken = uuid.NewString()
	}

	log.Debugf("starting FIS experiment from template %s", templateID)
	out, err := api.StartExperiment(ctx, &fisv2.StartExperimentInput{
		ExperimentTemplateId: awsv2.String(templateID),
		ClientToken:          awsv2.String(clientToken),
		Tags:                 tags,
	})
	if err != nil {
		return nil, fmt.Errorf("start experiment failed: %w", err)
	}
	return out, nil
}
