// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package awslambda

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	lambdav2 "github.com/aws/aws-sdk-go-v2/service/lambda"
)

// GetFunctionConcurrency returns the reserved concurrency configured on
// a Lambda function. A function with no reservation fails the probe.
func GetFunctionConcurrency(ctx context.Context, api API, functionName string) (int32, error) {
	out, err := api.GetFunction(ctx, &lambdav2.GetFunctionInput{
		FunctionName: awsv2.String(functionName),
	})
	if err != nil {
		return 0, err
	}
	if out.Concurrency == nil || out.Concurrency.ReservedConcurrentExecutions == nil {
		return 0, fmt.Errorf("no reserved concurrency set on function %q", functionName)
	}
	return awsv2.ToInt32(out.Concurrency.ReservedConcurrentExecutions), nil
}
