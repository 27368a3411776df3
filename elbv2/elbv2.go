// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package elbv2 exposes chaos actions and probes for application and
// network load balancers and their target groups.
package elbv2

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	elbv2v2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// API lists the ELBv2 operations this package invokes.
type API interface {
	DescribeLoadBalancers(ctx context.Context, params *elbv2v2.DescribeLoadBalancersInput,
		optFns ...func(*elbv2v2.Options)) (*elbv2v2.DescribeLoadBalancersOutput, error)
	DescribeTargetGroups(ctx context.Context, params *elbv2v2.DescribeTargetGroupsInput,
		optFns ...func(*elbv2v2.Options)) (*elbv2v2.DescribeTargetGroupsOutput, error)
	DescribeTargetHealth(ctx context.Context, params *elbv2v2.DescribeTargetHealthInput,
		optFns ...func(*elbv2v2.Options)) (*elbv2v2.DescribeTargetHealthOutput, error)
	DeregisterTargets(ctx context.Context, params *elbv2v2.DeregisterTargetsInput,
		optFns ...func(*elbv2v2.Options)) (*elbv2v2.DeregisterTargetsOutput, error)
	SetSecurityGroups(ctx context.Context, params *elbv2v2.SetSecurityGroupsInput,
		optFns ...func(*elbv2v2.Options)) (*elbv2v2.SetSecurityGroupsOutput, error)
	SetSubnets(ctx context.Context, params *elbv2v2.SetSubnetsInput,
		optFns ...func(*elbv2v2.Options)) (*elbv2v2.SetSubnetsOutput, error)
	DeleteLoadBalancer(ctx context.Context, params *elbv2v2.DeleteLoadBalancerInput,
		optFns ...func(*elbv2v2.Options)) (*elbv2v2.DeleteLoadBalancerOutput, error)
}

// New constructs an ELBv2 client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*elbv2v2.Options)) *elbv2v2.Client {
	return elbv2v2.NewFromConfig(cfg, optFns...)
}

// loadBalancerARNs resolves the named load balancers and returns their
// ARNs grouped by type. Every name must resolve to an active balancer.
func loadBalancerARNs(ctx context.Context, api API,
	names []string) (map[types.LoadBalancerTypeEnum][]string, error) {
	log.Debugf("searching for load balancers %v", names)
	out, err := api.DescribeLoadBalancers(ctx, &elbv2v2.DescribeLoadBalancersInput{
		Names: names,
	})
	if err != nil {
		return nil, err
	}

	arns := map[types.LoadBalancerTypeEnum][]string{}
	found := map[string]bool{}
	for _, lb := range out.LoadBalancers {
		if lb.State.Code != types.LoadBalancerStateEnumActive {
			return nil, fmt.Errorf("invalid state for load balancer %s: %s is not active",
				awsv2.ToString(lb.LoadBalancerName), lb.State.Code)
		}
		arns[lb.Type] = append(arns[lb.Type], awsv2.ToString(lb.LoadBalancerArn))
		found[awsv2.ToString(lb.LoadBalancerName)] = true
	}

	var missing []string
	for _, name := range names {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("unable to locate load balancer(s): %v", missing)
	}
	return arns, nil
}

// targetGroupARNs maps target group names to their ARNs.
func targetGroupARNs(ctx context.Context, api API, names []string) (map[string]string, error) {
	out, err := api.DescribeTargetGroups(ctx, &elbv2v2.DescribeTargetGroupsInput{
		Names: names,
	})
	if err != nil {
		return nil, err
	}
	arns := make(map[string]string, len(out.TargetGroups))
	for _, tg := range out.TargetGroups {
		arns[awsv2.ToString(tg.TargetGroupName)] = awsv2.ToString(tg.TargetGroupArn)
	}
	return arns, nil
}

// targetsHealth maps target group names to their health descriptions.
func targetsHealth(ctx context.Context, api API,
	arns map[string]string) (map[string][]types.TargetHealthDescription, error) {
	health := make(map[string][]types.TargetHealthDescription, len(arns))
	for name, arn := range arns {
		out, err := api.DescribeTargetHealth(ctx, &elbv2v2.DescribeTargetHealthInput{
			TargetGroupArn: awsv2.String(arn),
		})
		if err != nil {
			return nil, err
		}
		health[name] = out.TargetHealthDescriptions
	}
	return health, nil
}
