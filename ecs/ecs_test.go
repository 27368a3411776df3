// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package ecs

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ecsv2 "github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeECS struct {
	listPages []*ecsv2.ListServicesOutput
	listCalls []*ecsv2.ListServicesInput
	listIdx   int

	describeOut *ecsv2.DescribeServicesOutput

	updateCalls     []*ecsv2.UpdateServiceInput
	deleteCalls     []*ecsv2.DeleteServiceInput
	stopCalls       []*ecsv2.StopTaskInput
	clusterCalls    []*ecsv2.DeleteClusterInput
	deregisterCalls []*ecsv2.DeregisterContainerInstanceInput
}

func (f *fakeECS) ListServices(_ context.Context, params *ecsv2.ListServicesInput,
	_ ...func(*ecsv2.Options)) (*ecsv2.ListServicesOutput, error) {
	f.listCalls = append(f.listCalls, params)
	if f.listIdx >= len(f.listPages) {
		return &ecsv2.ListServicesOutput{}, nil
	}
	page := f.listPages[f.listIdx]
	f.listIdx++
	return page, nil
}

func (f *fakeECS) DescribeServices(_ context.Context, _ *ecsv2.DescribeServicesInput,
	_ ...func(*ecsv2.Options)) (*ecsv2.DescribeServicesOutput, error) {
	if f.describeOut == nil {
		return &ecsv2.DescribeServicesOutput{}, nil
	}
	return f.describeOut, nil
}

func (f *fakeECS) UpdateService(_ context.Context, params *ecsv2.UpdateServiceInput,
	_ ...func(*ecsv2.Options)) (*ecsv2.UpdateServiceOutput, error) {
	f.updateCalls = append(f.updateCalls, params)
	return &ecsv2.UpdateServiceOutput{}, nil
}

func (f *fakeECS) DeleteService(_ context.Context, params *ecsv2.DeleteServiceInput,
	_ ...func(*ecsv2.Options)) (*ecsv2.DeleteServiceOutput, error) {
	f.deleteCalls = append(f.deleteCalls, params)
	return &ecsv2.DeleteServiceOutput{
		Service: &types.Service{ServiceName: params.Service},
	}, nil
}

func (f *fakeECS) DeleteCluster(_ context.Context, params *ecsv2.DeleteClusterInput,
	_ ...func(*ecsv2.Options)) (*ecsv2.DeleteClusterOutput, error) {
	f.clusterCalls = append(f.clusterCalls, params)
	return &ecsv2.DeleteClusterOutput{}, nil
}

func (f *fakeECS) StopTask(_ context.Context, params *ecsv2.StopTaskInput,
	_ ...func(*ecsv2.Options)) (*ecsv2.StopTaskOutput, error) {
	f.stopCalls = append(f.stopCalls, params)
	return &ecsv2.StopTaskOutput{}, nil
}

func (f *fakeECS) DeregisterContainerInstance(_ context.Context,
	params *ecsv2.DeregisterContainerInstanceInput,
	_ ...func(*ecsv2.Options)) (*ecsv2.DeregisterContainerInstanceOutput, error) {
	f.deregisterCalls = append(f.deregisterCalls, params)
	return &ecsv2.DeregisterContainerInstanceOutput{}, nil
}

func TestStopTaskDefaultReason(t *testing.T) {
	fake := &fakeECS{}
	_, err := StopTask(context.Background(), fake, "default", "16fd2706-8baf-433b", "")
	require.NoError(t, err)
	require.Len(t, fake.stopCalls, 1)
	call := fake.stopCalls[0]
	assert.Equal(t, "default", awsv2.ToString(call.Cluster))
	assert.Equal(t, "16fd2706-8baf-433b", awsv2.ToString(call.Task))
	assert.Equal(t, DefaultStopReason, awsv2.ToString(call.Reason))
}

func TestDeleteServiceScalesDownFirst(t *testing.T) {
	fake := &fakeECS{}
	_, err := DeleteService(context.Background(), fake, "default", "web")
	require.NoError(t, err)

	require.Len(t, fake.updateCalls, 1)
	update := fake.updateCalls[0]
	assert.Equal(t, int32(0), awsv2.ToInt32(update.DesiredCount))
	require.NotNil(t, update.DeploymentConfiguration)
	assert.Equal(t, int32(100), awsv2.ToInt32(update.DeploymentConfiguration.MaximumPercent))
	assert.Equal(t, int32(0), awsv2.ToInt32(update.DeploymentConfiguration.MinimumHealthyPercent))

	require.Len(t, fake.deleteCalls, 1)
	assert.Equal(t, "web", awsv2.ToString(fake.deleteCalls[0].Service))
}

func TestDeleteRandomServiceMatchingPicksFromFiltered(t *testing.T) {
	arn := func(name string) string {
		return "arn:aws:ecs:us-east-1:012345678901:service/" + name
	}
	for range 50 {
		fake := &fakeECS{listPages: []*ecsv2.ListServicesOutput{
			{
				ServiceArns: []string{arn("web-1"), arn("worker-1")},
				NextToken:   awsv2.String("tok"),
			},
			{ServiceArns: []string{arn("web-2"), arn("worker-2")}},
		}}
		_, err := DeleteRandomServiceMatching(context.Background(), fake, "default", "web")
		require.NoError(t, err)
		require.Len(t, fake.deleteCalls, 1)
		deleted := awsv2.ToString(fake.deleteCalls[0].Service)
		assert.Contains(t, []string{"web-1", "web-2"}, deleted)
	}
}

func TestDeleteRandomServiceMatchingNoMatch(t *testing.T) {
	fake := &fakeECS{listPages: []*ecsv2.ListServicesOutput{
		{ServiceArns: []string{"arn:aws:ecs:us-east-1:012345678901:service/worker-1"}},
	}}
	_, err := DeleteRandomServiceMatching(context.Background(), fake, "default", "web")
	require.ErrorContains(t, err, "no service matching the filter")
	assert.Empty(t, fake.deleteCalls)
}

func TestDeleteRandomServiceEmptyCluster(t *testing.T) {
	fake := &fakeECS{}
	_, err := DeleteRandomService(context.Background(), fake, "default")
	require.ErrorContains(t, err, "no services found in cluster")
}

func TestDeregisterContainerInstance(t *testing.T) {
	fake := &fakeECS{}
	_, err := DeregisterContainerInstance(context.Background(), fake, "default",
		"arn:aws:ecs:us-east-1:012345678901:container-instance/abc", true)
	require.NoError(t, err)
	require.Len(t, fake.deregisterCalls, 1)
	assert.True(t, awsv2.ToBool(fake.deregisterCalls[0].Force))
}

func TestServiceIsDeploying(t *testing.T) {
	tests := []struct {
		name        string
		deployments int
		want        bool
	}{
		{"steady state", 1, false},
		{"rolling update", 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeECS{describeOut: &ecsv2.DescribeServicesOutput{
				Services: []types.Service{{
					Deployments: make([]types.Deployment, tt.deployments),
				}},
			}}
			got, err := ServiceIsDeploying(context.Background(), fake, "default", "web")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceIsDeployingMissingService(t *testing.T) {
	fake := &fakeECS{}
	_, err := ServiceIsDeploying(context.Background(), fake, "default", "web")
	require.ErrorContains(t, err, "error retrieving service data from AWS")
}

func TestAllDesiredTasksRunning(t *testing.T) {
	fake := &fakeECS{describeOut: &ecsv2.DescribeServicesOutput{
		Services: []types.Service{{DesiredCount: 3, RunningCount: 2}},
	}}
	got, err := AllDesiredTasksRunning(context.Background(), fake, "default", "web")
	require.NoError(t, err)
	assert.False(t, got)
}
