// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package asg exposes chaos actions and probes for EC2 Auto Scaling
// groups.
package asg

import (
	"context"
	"fmt"
	"sort"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	asgv2 "github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// API lists the Auto Scaling operations this package invokes.
type API interface {
	DescribeAutoScalingGroups(ctx context.Context, params *asgv2.DescribeAutoScalingGroupsInput,
		optFns ...func(*asgv2.Options)) (*asgv2.DescribeAutoScalingGroupsOutput, error)
	SuspendProcesses(ctx context.Context, params *asgv2.SuspendProcessesInput,
		optFns ...func(*asgv2.Options)) (*asgv2.SuspendProcessesOutput, error)
	ResumeProcesses(ctx context.Context, params *asgv2.ResumeProcessesInput,
		optFns ...func(*asgv2.Options)) (*asgv2.ResumeProcessesOutput, error)
}

// New constructs an Auto Scaling client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*asgv2.Options)) *asgv2.Client {
	return asgv2.NewFromConfig(cfg, optFns...)
}

// Tag identifies auto scaling groups by a key/value pair.
type Tag struct {
	Key   string
	Value string
}

// validProcesses are the scaling process names AWS accepts for
// suspend/resume.
var validProcesses = []string{
	"Launch", "Terminate", "HealthCheck", "AZRebalance",
	"AlarmNotification", "ScheduledActions",
	"AddToLoadBalancer", "ReplaceUnhealthy",
}

func validateSelectors(asgNames []string, tags []Tag) error {
	if len(asgNames) == 0 && len(tags) == 0 {
		return fmt.Errorf("one of the following arguments is required: asgNames or tags")
	}
	if len(asgNames) > 0 && len(tags) > 0 {
		return fmt.Errorf("only one of the following arguments is allowed: asgNames/tags")
	}
	return nil
}

func validateProcesses(processNames []string) error {
	var invalid []string
	for _, p := range processNames {
		found := false
		for _, v := range validProcesses {
			if p == v {
				found = true
				break
			}
		}
		if !found {
			invalid = append(invalid, p)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid process(es): %v not in %v", invalid, validProcesses)
	}
	return nil
}

// groupsByName returns the descriptions of the named groups, exhausting
// every page, and fails when any requested name is missing.
func groupsByName(ctx context.Context, api API, asgNames []string) ([]types.AutoScalingGroup, error) {
	log.Debugf("searching for ASG(s): %v", asgNames)

	var groups []types.AutoScalingGroup
	paginator := asgv2.NewDescribeAutoScalingGroupsPaginator(api,
		&asgv2.DescribeAutoScalingGroupsInput{AutoScalingGroupNames: asgNames})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		groups = append(groups, page.AutoScalingGroups...)
	}

	found := map[string]bool{}
	for _, g := range groups {
		found[awsv2.ToString(g.AutoScalingGroupName)] = true
	}
	var missing []string
	for _, name := range asgNames {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("no ASG(s) found matching: %v", missing)
	}
	return groups, nil
}

// groupsByTags returns the groups carrying every provided tag. The API
// offers no tag filter on the describe call, so all groups are listed and
// filtered locally.
func groupsByTags(ctx context.Context, api API, tags []Tag) ([]types.AutoScalingGroup, error) {
	var all []types.AutoScalingGroup
	paginator := asgv2.NewDescribeAutoScalingGroupsPaginator(api,
		&asgv2.DescribeAutoScalingGroupsInput{MaxRecords: awsv2.Int32(100)})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, page.AutoScalingGroups...)
	}

	var matched []types.AutoScalingGroup
	for _, g := range all {
		carried := map[string]bool{}
		for _, t := range g.Tags {
			carried[awsv2.ToString(t.Key)+"="+awsv2.ToString(t.Value)] = true
		}
		match := true
		for _, t := range tags {
			if !carried[t.Key+"="+t.Value] {
				match = false
				break
			}
		}
		if match {
			matched = append(matched, g)
		}
	}

	if len(matched) == 0 {
		return nil, fmt.Errorf("no auto-scaling groups matched the tags provided")
	}
	return matched, nil
}

func groupsBySelector(ctx context.Context, api API, asgNames []string, tags []Tag) ([]types.AutoScalingGroup, error) {
	if err := validateSelectors(asgNames, tags); err != nil {
		return nil, err
	}
	if len(asgNames) > 0 {
		return groupsByName(ctx, api, asgNames)
	}
	return groupsByTags(ctx, api, tags)
}

// desiredEqualsHealthy reports whether every group's desired capacity is
// matched by its count of healthy in-service instances.
func desiredEqualsHealthy(groups []types.AutoScalingGroup) bool {
	if len(groups) == 0 {
		return false
	}
	for _, g := range groups {
		healthy := int32(0)
		for _, i := range g.Instances {
			if i.LifecycleState == types.LifecycleStateInService &&
				awsv2.ToString(i.HealthStatus) == "Healthy" {
				healthy++
			}
		}
		if healthy == 0 || awsv2.ToInt32(g.DesiredCapacity) != healthy {
			return false
		}
	}
	return true
}

func sortedSubnets(vpcZoneIdentifier string) []string {
	subnets := strings.Split(vpcZoneIdentifier, ",")
	sort.Strings(subnets)
	return subnets
}
