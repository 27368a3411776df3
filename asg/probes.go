// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package asg

import (
	"context"
	"fmt"
	"sort"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/autoscaling/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// waitPollInterval is how often the wait probes re-describe the groups.
var waitPollInterval = 100 * time.Millisecond

// DescribeAutoScalingGroups returns the descriptions for the groups
// selected by name or tags.
func DescribeAutoScalingGroups(ctx context.Context, api API, asgNames []string,
	tags []Tag) ([]types.AutoScalingGroup, error) {
	return groupsBySelector(ctx, api, asgNames, tags)
}

// DesiredEqualsHealthy reports whether the desired capacity matches the
// number of healthy in-service instances for each of the named groups.
func DesiredEqualsHealthy(ctx context.Context, api API, asgNames []string) (bool, error) {
	if len(asgNames) == 0 {
		return false, fmt.Errorf("non-empty list of auto scaling groups is required")
	}
	groups, err := groupsByName(ctx, api, asgNames)
	if err != nil {
		return false, err
	}
	return desiredEqualsHealthy(groups), nil
}

// DesiredEqualsHealthyByTags reports whether the desired capacity matches
// the number of healthy in-service instances for each group carrying the
// given tags.
func DesiredEqualsHealthyByTags(ctx context.Context, api API, tags []Tag) (bool, error) {
	if len(tags) == 0 {
		return false, fmt.Errorf("non-empty tags is required")
	}
	groups, err := groupsByTags(ctx, api, tags)
	if err != nil {
		return false, err
	}
	return desiredEqualsHealthy(groups), nil
}

// WaitDesiredEqualsHealthy blocks until the desired capacity matches the
// healthy in-service instance count for each named group, returning the
// time waited. Reaching the timeout is an error.
func WaitDesiredEqualsHealthy(ctx context.Context, api API, asgNames []string,
	timeout time.Duration) (time.Duration, error) {
	if len(asgNames) == 0 {
		return 0, fmt.Errorf("non-empty list of auto scaling groups is required")
	}
	return waitUntil(ctx, timeout, func() (bool, error) {
		groups, err := groupsByName(ctx, api, asgNames)
		if err != nil {
			return false, err
		}
		return desiredEqualsHealthy(groups), nil
	})
}

// WaitDesiredEqualsHealthyByTags blocks until the desired capacity matches
// the healthy in-service instance count for each group carrying the given
// tags, returning the time waited. Reaching the timeout is an error.
func WaitDesiredEqualsHealthyByTags(ctx context.Context, api API, tags []Tag,
	timeout time.Duration) (time.Duration, error) {
	if len(tags) == 0 {
		return 0, fmt.Errorf("non-empty tags is required")
	}
	return waitUntil(ctx, timeout, func() (bool, error) {
		groups, err := groupsByTags(ctx, api, tags)
		if err != nil {
			return false, err
		}
		return desiredEqualsHealthy(groups), nil
	})
}

// WaitDesiredNotEqualsHealthyByTags blocks until the desired capacity no
// longer matches the healthy in-service instance count for the groups
// carrying the given tags, returning the time waited. Reaching the
// timeout is an error.
func WaitDesiredNotEqualsHealthyByTags(ctx context.Context, api API, tags []Tag,
	timeout time.Duration) (time.Duration, error) {
	if len(tags) == 0 {
		return 0, fmt.Errorf("non-empty tags is required")
	}
	return waitUntil(ctx, timeout, func() (bool, error) {
		groups, err := groupsByTags(ctx, api, tags)
		if err != nil {
			return false, err
		}
		return !desiredEqualsHealthy(groups), nil
	})
}

// IsScalingInProgress reports whether any scaling activity is in progress
// for the groups carrying the given tags.
func IsScalingInProgress(ctx context.Context, api API, tags []Tag) (bool, error) {
	if len(tags) == 0 {
		return false, fmt.Errorf("non-empty tags is required")
	}
	groups, err := groupsByTags(ctx, api, tags)
	if err != nil {
		return false, err
	}

	for _, g := range groups {
		for _, i := range g.Instances {
			if i.LifecycleState != types.LifecycleStateInService ||
				awsv2.ToString(i.HealthStatus) != "Healthy" {
				log.Debugf("scaling activities in progress: true")
				return true, nil
			}
		}
	}
	log.Debugf("scaling activities in progress: false")
	return false, nil
}

// ProcessIsSuspended reports whether every given process is suspended on
// every selected group.
func ProcessIsSuspended(ctx context.Context, api API, asgNames []string, tags []Tag,
	processNames []string) (bool, error) {
	groups, err := groupsBySelector(ctx, api, asgNames, tags)
	if err != nil {
		return false, err
	}

	for _, g := range groups {
		suspended := map[string]bool{}
		for _, p := range g.SuspendedProcesses {
			suspended[awsv2.ToString(p.ProcessName)] = true
		}
		for _, p := range processNames {
			if !suspended[p] {
				return false, nil
			}
		}
	}
	return true, nil
}

// HasSubnets reports whether each selected group spans exactly the
// provided subnets.
func HasSubnets(ctx context.Context, api API, subnets []string, asgNames []string,
	tags []Tag) (bool, error) {
	groups, err := groupsBySelector(ctx, api, asgNames, tags)
	if err != nil {
		return false, err
	}

	want := append([]string(nil), subnets...)
	sort.Strings(want)
	for _, g := range groups {
		got := sortedSubnets(awsv2.ToString(g.VPCZoneIdentifier))
		if !equalStrings(got, want) {
			return false, nil
		}
	}
	return true, nil
}

func waitUntil(ctx context.Context, timeout time.Duration, cond func() (bool, error)) (time.Duration, error) {
	start := time.Now()
	for {
		ok, err := cond()
		if err != nil {
			return 0, err
		}
		if ok {
			waited := time.Since(start)
			log.Debugf("waiting time was: %s", waited)
			return waited, nil
		}
		if time.Since(start) > timeout {
			return 0, fmt.Errorf("timed out after %s", timeout)
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(waitPollInterval):
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
