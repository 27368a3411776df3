// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package awslambda

import (
	"context"
	"errors"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	lambdav2 "github.com/aws/aws-sdk-go-v2/service/lambda"

	"github.com/chaosaws/chaosaws/internal/log"
)

// PutFunctionConcurrency throttles a Lambda function by setting its
// reserved concurrency.
func PutFunctionConcurrency(ctx context.Context, api API, functionName string,
	concurrentExecutions int32) (*lambdav2.PutFunctionConcurrencyOutput, error) {
	if functionName == "" {
		return nil, errors.New("you must specify the lambda function name")
	}
	log.Debugf("setting reserved concurrency of %s to %d", functionName, concurrentExecutions)
	out, err := api.PutFunctionConcurrency(ctx, &lambdav2.PutFunctionConcurrencyInput{
		FunctionName:                 awsv2.String(functionName),
		ReservedConcurrentExecutions: awsv2.Int32(concurrentExecutions),
	})
	if err != nil {
		return nil, fmt.Errorf("failed throttling lambda function %q: %w", functionName, err)
	}
	return out, nil
}

// DeleteFunctionConcurrency removes the reserved concurrency limit from
// a Lambda function.
func DeleteFunctionConcurrency(ctx context.Context, api API,
	functionName string) (*lambdav2.DeleteFunctionConcurrencyOutput, error) {
	log.Debugf("removing reserved concurrency of %s", functionName)
	return api.DeleteFunctionConcurrency(ctx, &lambdav2.DeleteFunctionConcurrencyInput{
		FunctionName: awsv2.String(functionName),
	})
}
