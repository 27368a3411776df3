// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package elbv2

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	elbv2v2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// DeregisterRandomTarget deregisters one target picked uniformly at random
// from the given target group.
func DeregisterRandomTarget(ctx context.Context, api API, targetGroupName string) (*elbv2v2.DeregisterTargetsOutput, error) {
	arns, err := targetGroupARNs(ctx, api, []string{targetGroupName})
	if err != nil {
		return nil, err
	}
	arn, ok := arns[targetGroupName]
	if !ok {
		return nil, fmt.Errorf("unable to locate target group: %s", targetGroupName)
	}

	health, err := targetsHealth(ctx, api, map[string]string{targetGroupName: arn})
	if err != nil {
		return nil, err
	}
	descriptions := health[targetGroupName]
	if len(descriptions) == 0 {
		return nil, fmt.Errorf("no targets registered in target group: %s", targetGroupName)
	}

	target := descriptions[rand.IntN(len(descriptions))].Target
	log.Debugf("deregistering target %s from target group %s",
		awsv2.ToString(target.Id), targetGroupName)
	return api.DeregisterTargets(ctx, &elbv2v2.DeregisterTargetsInput{
		TargetGroupArn: awsv2.String(arn),
		Targets:        []types.TargetDescription{{Id: target.Id}},
	})
}

// SetSecurityGroups replaces the security groups of the given
// application load balancers. Network load balancers are refused.
func SetSecurityGroups(ctx context.Context, api API, loadBalancerNames,
	securityGroupIDs []string) ([]*elbv2v2.SetSecurityGroupsOutput, error) {
	arns, err := loadBalancerARNs(ctx, api, loadBalancerNames)
	if err != nil {
		return nil, err
	}
	if len(arns[types.LoadBalancerTypeEnumNetwork]) > 0 {
		return nil, errors.New("cannot change security groups of network load balancers")
	}

	var results []*elbv2v2.SetSecurityGroupsOutput
	for _, arn := range arns[types.LoadBalancerTypeEnumApplication] {
		out, err := api.SetSecurityGroups(ctx, &elbv2v2.SetSecurityGroupsInput{
			LoadBalancerArn: awsv2.String(arn),
			SecurityGroups:  securityGroupIDs,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}
	return results, nil
}

// SetSubnets replaces the subnets of the given application load
// balancers. Network load balancers are refused.
func SetSubnets(ctx context.Context, api API, loadBalancerNames,
	subnetIDs []string) ([]*elbv2v2.SetSubnetsOutput, error) {
	arns, err := loadBalancerARNs(ctx, api, loadBalancerNames)
	if err != nil {
		return nil, err
	}
	if len(arns[types.LoadBalancerTypeEnumNetwork]) > 0 {
		return nil, errors.New("cannot change subnets of network load balancers")
	}

	var results []*elbv2v2.SetSubnetsOutput
	for _, arn := range arns[types.LoadBalancerTypeEnumApplication] {
		out, err := api.SetSubnets(ctx, &elbv2v2.SetSubnetsInput{
			LoadBalancerArn: awsv2.String(arn),
			Subnets:         subnetIDs,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, out)
	}
	return results, nil
}

// DeleteLoadBalancers deletes the given load balancers.
func DeleteLoadBalancers(ctx context.Context, api API, loadBalancerNames []string) error {
	arns, err := loadBalancerARNs(ctx, api, loadBalancerNames)
	if err != nil {
		return err
	}
	for _, kind := range []types.LoadBalancerTypeEnum{
		types.LoadBalancerTypeEnumApplication,
		types.LoadBalancerTypeEnumNetwork,
	} {
		for _, arn := range arns[kind] {
			log.Debugf("deleting load balancer %s", arn)
			if _, err := api.DeleteLoadBalancer(ctx, &elbv2v2.DeleteLoadBalancerInput{
				LoadBalancerArn: awsv2.String(arn),
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
