// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package msk

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	kafkav2 "github.com/aws/aws-sdk-go-v2/service/kafka"
	"github.com/aws/aws-sdk-go-v2/service/kafka/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clusterARN = "arn:aws:kafka:us-east-1:012345678901:cluster/demo/abcd"

type fakeMSK struct {
	err         error
	rebootCalls []*kafkav2.RebootBrokerInput
	deleteCalls []*kafkav2.DeleteClusterInput
	brokers     string
}

func (f *fakeMSK) RebootBroker(_ context.Context, params *kafkav2.RebootBrokerInput,
	_ ...func(*kafkav2.Options)) (*kafkav2.RebootBrokerOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.rebootCalls = append(f.rebootCalls, params)
	return &kafkav2.RebootBrokerOutput{}, nil
}

func (f *fakeMSK) DeleteCluster(_ context.Context, params *kafkav2.DeleteClusterInput,
	_ ...func(*kafkav2.Options)) (*kafkav2.DeleteClusterOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleteCalls = append(f.deleteCalls, params)
	return &kafkav2.DeleteClusterOutput{State: types.ClusterStateDeleting}, nil
}

func (f *fakeMSK) DescribeCluster(_ context.Context, _ *kafkav2.DescribeClusterInput,
	_ ...func(*kafkav2.Options)) (*kafkav2.DescribeClusterOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &kafkav2.DescribeClusterOutput{
		ClusterInfo: &types.ClusterInfo{ClusterArn: awsv2.String(clusterARN)},
	}, nil
}

func (f *fakeMSK) GetBootstrapBrokers(_ context.Context, _ *kafkav2.GetBootstrapBrokersInput,
	_ ...func(*kafkav2.Options)) (*kafkav2.GetBootstrapBrokersOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &kafkav2.GetBootstrapBrokersOutput{
		BootstrapBrokerString: awsv2.String(f.brokers),
	}, nil
}

func TestRebootBroker(t *testing.T) {
	fake := &fakeMSK{}
	_, err := RebootBroker(context.Background(), fake, clusterARN, []string{"1", "2"})
	require.NoError(t, err)
	require.Len(t, fake.rebootCalls, 1)
	assert.Equal(t, clusterARN, awsv2.ToString(fake.rebootCalls[0].ClusterArn))
	assert.Equal(t, []string{"1", "2"}, fake.rebootCalls[0].BrokerIds)
}

func TestClusterNotFound(t *testing.T) {
	fake := &fakeMSK{err: &types.NotFoundException{}}

	_, err := RebootBroker(context.Background(), fake, clusterARN, []string{"1"})
	require.ErrorContains(t, err, "the specified cluster was not found")

	_, err = DeleteCluster(context.Background(), fake, clusterARN)
	require.ErrorContains(t, err, "the specified cluster was not found")

	_, err = DescribeCluster(context.Background(), fake, clusterARN)
	require.ErrorContains(t, err, "the specified cluster was not found")

	_, err = GetBootstrapServers(context.Background(), fake, clusterARN)
	require.ErrorContains(t, err, "the specified cluster was not found")
}

func TestGetBootstrapServers(t *testing.T) {
	fake := &fakeMSK{brokers: "b-1.demo:9092,b-2.demo:9092"}
	got, err := GetBootstrapServers(context.Background(), fake, clusterARN)
	require.NoError(t, err)
	assert.Equal(t, []string{"b-1.demo:9092", "b-2.demo:9092"}, got)
}

func TestGetBootstrapServersEmpty(t *testing.T) {
	fake := &fakeMSK{}
	got, err := GetBootstrapServers(context.Background(), fake, clusterARN)
	require.NoError(t, err)
	assert.Nil(t, got)
}
