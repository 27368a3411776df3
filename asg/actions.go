// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package asg

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	asgv2 "github.com/aws/aws-sdk-go-v2/service/autoscaling"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// SuspendProcesses suspends one or more scaling processes on the groups
// selected by name or tags. When no process is named, all running scaling
// processes are suspended. The refreshed group descriptions are returned.
func SuspendProcesses(ctx context.Context, api API, asgNames []string, tags []Tag,
	processNames []string) ([]types.AutoScalingGroup, error) {
	groups, err := selectForProcessChange(ctx, api, asgNames, tags, processNames)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		name := awsv2.ToString(g.AutoScalingGroupName)
		log.Debugf("suspending process(es) %v on %s", processNames, name)
		if _, err := api.SuspendProcesses(ctx, &asgv2.SuspendProcessesInput{
			AutoScalingGroupName: g.AutoScalingGroupName,
			ScalingProcesses:     processNames,
		}); err != nil {
			return nil, err
		}
	}
	return refresh(ctx, api, groups)
}

// ResumeProcesses resumes one or more suspended scaling processes on the
// groups selected by name or tags. When no process is named, all
// suspended processes are resumed. The refreshed group descriptions are
// returned.
func ResumeProcesses(ctx context.Context, api API, asgNames []string, tags []Tag,
	processNames []string) ([]types.AutoScalingGroup, error) {
	groups, err := selectForProcessChange(ctx, api, asgNames, tags, processNames)
	if err != nil {
		return nil, err
	}

	for _, g := range groups {
		name := awsv2.ToString(g.AutoScalingGroupName)
		log.Debugf("resuming process(es) %v on %s", processNames, name)
		if _, err := api.ResumeProcesses(ctx, &asgv2.ResumeProcessesInput{
			AutoScalingGroupName: g.AutoScalingGroupName,
			ScalingProcesses:     processNames,
		}); err != nil {
			return nil, err
		}
	}
	return refresh(ctx, api, groups)
}

func selectForProcessChange(ctx context.Context, api API, asgNames []string, tags []Tag,
	processNames []string) ([]types.AutoScalingGroup, error) {
	if err := validateProcesses(processNames); err != nil {
		return nil, err
	}
	return groupsBySelector(ctx, api, asgNames, tags)
}

func refresh(ctx context.Context, api API, groups []types.AutoScalingGroup) ([]types.AutoScalingGroup, error) {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, awsv2.ToString(g.AutoScalingGroupName))
	}
	return groupsByName(ctx, api, names)
}
