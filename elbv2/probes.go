// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package elbv2

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

var errNoTargetGroups = errors.New("a non-empty list of target groups is required")

// TargetsHealthCount returns, per target group, the number of targets
// in each health state.
func TargetsHealthCount(ctx context.Context, api API, targetGroupNames []string) (map[string]map[string]int, error) {
	if len(targetGroupNames) == 0 {
		return nil, errNoTargetGroups
	}
	arns, err := targetGroupARNs(ctx, api, targetGroupNames)
	if err != nil {
		return nil, err
	}
	health, err := targetsHealth(ctx, api, arns)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]map[string]int, len(health))
	for name, descriptions := range health {
		counts[name] = map[string]int{}
		for _, d := range descriptions {
			if d.TargetHealth == nil {
				continue
			}
			counts[name][string(d.TargetHealth.State)]++
		}
	}
	return counts, nil
}

// AllTargetsHealthy reports whether every target of every given target
// group is healthy.
func AllTargetsHealthy(ctx context.Context, api API, targetGroupNames []string) (bool, error) {
	if len(targetGroupNames) == 0 {
		return false, errNoTargetGroups
	}
	log.Debugf("checking health of targets in %v", targetGroupNames)
	arns, err := targetGroupARNs(ctx, api, targetGroupNames)
	if err != nil {
		return false, err
	}
	health, err := targetsHealth(ctx, api, arns)
	if err != nil {
		return false, err
	}

	for _, descriptions := range health {
		for _, d := range descriptions {
			if d.TargetHealth == nil || d.TargetHealth.State != types.TargetHealthStateEnumHealthy {
				return false, nil
			}
		}
	}
	return true, nil
}
