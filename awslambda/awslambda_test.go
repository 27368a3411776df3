// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package awslambda

import (
	"context"
	"errors"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	lambdav2 "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLambda struct {
	putCalls    []*lambdav2.PutFunctionConcurrencyInput
	deleteCalls []*lambdav2.DeleteFunctionConcurrencyInput
	putErr      error
	concurrency *types.Concurrency
}

func (f *fakeLambda) PutFunctionConcurrency(_ context.Context,
	params *lambdav2.PutFunctionConcurrencyInput,
	_ ...func(*lambdav2.Options)) (*lambdav2.PutFunctionConcurrencyOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.putCalls = append(f.putCalls, params)
	return &lambdav2.PutFunctionConcurrencyOutput{
		ReservedConcurrentExecutions: params.ReservedConcurrentExecutions,
	}, nil
}

func (f *fakeLambda) DeleteFunctionConcurrency(_ context.Context,
	params *lambdav2.DeleteFunctionConcurrencyInput,
	_ ...func(*lambdav2.Options)) (*lambdav2.DeleteFunctionConcurrencyOutput, error) {
	f.deleteCalls = append(f.deleteCalls, params)
	return &lambdav2.DeleteFunctionConcurrencyOutput{}, nil
}

func (f *fakeLambda) GetFunction(_ context.Context, _ *lambdav2.GetFunctionInput,
	_ ...func(*lambdav2.Options)) (*lambdav2.GetFunctionOutput, error) {
	return &lambdav2.GetFunctionOutput{Concurrency: f.concurrency}, nil
}

func TestPutFunctionConcurrency(t *testing.T) {
	fake := &fakeLambda{}
	_, err := PutFunctionConcurrency(context.Background(), fake, "checkout", 1)
	require.NoError(t, err)
	require.Len(t, fake.putCalls, 1)
	assert.Equal(t, "checkout", awsv2.ToString(fake.putCalls[0].FunctionName))
	assert.Equal(t, int32(1), awsv2.ToInt32(fake.putCalls[0].ReservedConcurrentExecutions))
}

func TestPutFunctionConcurrencyEmptyName(t *testing.T) {
	fake := &fakeLambda{}
	_, err := PutFunctionConcurrency(context.Background(), fake, "", 1)
	require.ErrorContains(t, err, "you must specify the lambda function name")
	assert.Empty(t, fake.putCalls)
}

func TestPutFunctionConcurrencyWrapsError(t *testing.T) {
	fake := &fakeLambda{putErr: errors.New("boom")}
	_, err := PutFunctionConcurrency(context.Background(), fake, "checkout", 1)
	require.ErrorContains(t, err, `failed throttling lambda function "checkout"`)
}

func TestDeleteFunctionConcurrency(t *testing.T) {
	fake := &fakeLambda{}
	_, err := DeleteFunctionConcurrency(context.Background(), fake, "checkout")
	require.NoError(t, err)
	require.Len(t, fake.deleteCalls, 1)
}

func TestGetFunctionConcurrency(t *testing.T) {
	fake := &fakeLambda{concurrency: &types.Concurrency{
		ReservedConcurrentExecutions: awsv2.Int32(5),
	}}
	got, err := GetFunctionConcurrency(context.Background(), fake, "checkout")
	require.NoError(t, err)
	assert.Equal(t, int32(5), got)
}

func TestGetFunctionConcurrencyUnset(t *testing.T) {
	fake := &fakeLambda{}
	_, err := GetFunctionConcurrency(context.Background(), fake, "checkout")
	require.ErrorContains(t, err, "no reserved concurrency set")
}
