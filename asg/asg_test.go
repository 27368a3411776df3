// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package asg

import (
	"context"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	asgv2 "github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeASG struct {
	pages      []*asgv2.DescribeAutoScalingGroupsOutput
	page       int
	describeIn []*asgv2.DescribeAutoScalingGroupsInput
	suspendIn  []*asgv2.SuspendProcessesInput
	resumeIn   []*asgv2.ResumeProcessesInput
}

func (f *fakeASG) DescribeAutoScalingGroups(_ context.Context, params *asgv2.DescribeAutoScalingGroupsInput,
	_ ...func(*asgv2.Options)) (*asgv2.DescribeAutoScalingGroupsOutput, error) {
	f.describeIn = append(f.describeIn, params)
	if f.page >= len(f.pages) {
		return &asgv2.DescribeAutoScalingGroupsOutput{}, nil
	}
	out := f.pages[f.page]
	f.page++
	return out, nil
}

func (f *fakeASG) SuspendProcesses(_ context.Context, params *asgv2.SuspendProcessesInput,
	_ ...func(*asgv2.Options)) (*asgv2.SuspendProcessesOutput, error) {
	f.suspendIn = append(f.suspendIn, params)
	return &asgv2.SuspendProcessesOutput{}, nil
}

func (f *fakeASG) ResumeProcesses(_ context.Context, params *asgv2.ResumeProcessesInput,
	_ ...func(*asgv2.Options)) (*asgv2.ResumeProcessesOutput, error) {
	f.resumeIn = append(f.resumeIn, params)
	return &asgv2.ResumeProcessesOutput{}, nil
}

func group(name string, desired, healthy int32, tags ...Tag) types.AutoScalingGroup {
	g := types.AutoScalingGroup{
		AutoScalingGroupName: awsv2.String(name),
		DesiredCapacity:      awsv2.Int32(desired),
	}
	for i := int32(0); i < desired; i++ {
		status := "Healthy"
		if i >= healthy {
			status = "Unhealthy"
		}
		g.Instances = append(g.Instances, types.Instance{
			HealthStatus:   awsv2.String(status),
			LifecycleState: types.LifecycleStateInService,
		})
	}
	for _, t := range tags {
		g.Tags = append(g.Tags, types.TagDescription{
			Key: awsv2.String(t.Key), Value: awsv2.String(t.Value),
		})
	}
	return g
}

func groupPage(next string, groups ...types.AutoScalingGroup) *asgv2.DescribeAutoScalingGroupsOutput {
	out := &asgv2.DescribeAutoScalingGroupsOutput{AutoScalingGroups: groups}
	if next != "" {
		out.NextToken = awsv2.String(next)
	}
	return out
}

func TestSuspendProcessesByName(t *testing.T) {
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{
		groupPage("", group("web", 2, 2)),
		groupPage("", group("web", 2, 2)),
	}}

	groups, err := SuspendProcesses(context.Background(), fake,
		[]string{"web"}, nil, []string{"Launch", "Terminate"})
	require.NoError(t, err)
	require.Len(t, groups, 1)

	require.Len(t, fake.suspendIn, 1)
	assert.Equal(t, "web", awsv2.ToString(fake.suspendIn[0].AutoScalingGroupName))
	assert.Equal(t, []string{"Launch", "Terminate"}, fake.suspendIn[0].ScalingProcesses)
}

func TestSuspendProcessesInvalidProcess(t *testing.T) {
	fake := &fakeASG{}

	_, err := SuspendProcesses(context.Background(), fake,
		[]string{"web"}, nil, []string{"NotAProcess"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid process(es)")
	assert.Empty(t, fake.suspendIn)
}

func TestSuspendProcessesSelectorValidation(t *testing.T) {
	fake := &fakeASG{}

	_, err := SuspendProcesses(context.Background(), fake, nil, nil, nil)
	require.Error(t, err)

	_, err = SuspendProcesses(context.Background(), fake,
		[]string{"web"}, []Tag{{Key: "a", Value: "b"}}, nil)
	require.Error(t, err)
}

func TestResumeProcessesByTags(t *testing.T) {
	tagged := group("web", 1, 1, Tag{Key: "env", Value: "prod"})
	other := group("db", 1, 1, Tag{Key: "env", Value: "dev"})
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{
		groupPage("", tagged, other),
		groupPage("", tagged),
	}}

	_, err := ResumeProcesses(context.Background(), fake, nil,
		[]Tag{{Key: "env", Value: "prod"}}, nil)
	require.NoError(t, err)

	require.Len(t, fake.resumeIn, 1)
	assert.Equal(t, "web", awsv2.ToString(fake.resumeIn[0].AutoScalingGroupName))
}

func TestGroupsByNameMissing(t *testing.T) {
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{
		groupPage("", group("web", 1, 1)),
	}}

	_, err := groupsByName(context.Background(), fake, []string{"web", "gone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone")
}

func TestGroupsByTagsPaginates(t *testing.T) {
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{
		groupPage("tok1", group("a", 1, 1, Tag{Key: "env", Value: "dev"})),
		groupPage("", group("b", 1, 1, Tag{Key: "env", Value: "prod"})),
	}}

	groups, err := groupsByTags(context.Background(), fake, []Tag{{Key: "env", Value: "prod"}})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "b", awsv2.ToString(groups[0].AutoScalingGroupName))
	assert.GreaterOrEqual(t, len(fake.describeIn), 2)
}

func TestGroupsByTagsNoMatch(t *testing.T) {
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{
		groupPage("", group("a", 1, 1, Tag{Key: "env", Value: "dev"})),
	}}

	_, err := groupsByTags(context.Background(), fake, []Tag{{Key: "env", Value: "prod"}})
	require.Error(t, err)
}

func TestDesiredEqualsHealthy(t *testing.T) {
	tests := []struct {
		name     string
		groups   []types.AutoScalingGroup
		expected bool
	}{
		{
			name:     "all healthy",
			groups:   []types.AutoScalingGroup{group("a", 2, 2), group("b", 3, 3)},
			expected: true,
		},
		{
			name:     "one group short",
			groups:   []types.AutoScalingGroup{group("a", 2, 2), group("b", 3, 1)},
			expected: false,
		},
		{
			name:     "no groups",
			groups:   nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, desiredEqualsHealthy(tt.groups))
		})
	}
}

func TestWaitDesiredEqualsHealthy(t *testing.T) {
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{
		groupPage("", group("web", 2, 1)),
		groupPage("", group("web", 2, 2)),
	}}

	waited, err := WaitDesiredEqualsHealthy(context.Background(), fake,
		[]string{"web"}, 5*time.Second)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, waited, time.Duration(0))
	assert.GreaterOrEqual(t, len(fake.describeIn), 2)
}

func TestWaitDesiredEqualsHealthyTimesOut(t *testing.T) {
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{
		groupPage("", group("web", 2, 1)),
		groupPage("", group("web", 2, 1)),
		groupPage("", group("web", 2, 1)),
	}}

	_, err := WaitDesiredEqualsHealthy(context.Background(), fake,
		[]string{"web"}, 150*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestProcessIsSuspended(t *testing.T) {
	g := group("web", 1, 1)
	g.SuspendedProcesses = []types.SuspendedProcess{
		{ProcessName: awsv2.String("Launch")},
	}
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{groupPage("", g)}}

	ok, err := ProcessIsSuspended(context.Background(), fake,
		[]string{"web"}, nil, []string{"Launch"})
	require.NoError(t, err)
	assert.True(t, ok)

	fake = &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{groupPage("", g)}}
	ok, err = ProcessIsSuspended(context.Background(), fake,
		[]string{"web"}, nil, []string{"Launch", "Terminate"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasSubnets(t *testing.T) {
	g := group("web", 1, 1)
	g.VPCZoneIdentifier = awsv2.String("subnet-b,subnet-a")
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{groupPage("", g)}}

	ok, err := HasSubnets(context.Background(), fake,
		[]string{"subnet-a", "subnet-b"}, []string{"web"}, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	fake = &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{groupPage("", g)}}
	ok, err = HasSubnets(context.Background(), fake,
		[]string{"subnet-a"}, []string{"web"}, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsScalingInProgress(t *testing.T) {
	g := group("web", 2, 1, Tag{Key: "env", Value: "prod"})
	fake := &fakeASG{pages: []*asgv2.DescribeAutoScalingGroupsOutput{groupPage("", g)}}

	ok, err := IsScalingInProgress(context.Background(), fake,
		[]Tag{{Key: "env", Value: "prod"}})
	require.NoError(t, err)
	assert.True(t, ok)
}
