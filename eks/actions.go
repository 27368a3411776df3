// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package eks

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	eksv2 "github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/chaosaws/chaosaws/ec2"
	"github.com/chaosaws/chaosaws/internal/log"
)

// terminatePollInterval is shortened by tests.
var terminatePollInterval = 5 * time.Second

// VPCConfig carries the network settings for a new cluster.
type VPCConfig struct {
	SubnetIDs        []string
	SecurityGroupIDs []string
}

// CreateCluster creates a new EKS cluster. Version may be empty to let
// the service pick its default.
func CreateCluster(ctx context.Context, api API, name, roleARN, version string,
	vpc VPCConfig) (*eksv2.CreateClusterOutput, error) {
	log.Debugf("creating EKS cluster %s", name)
	in := &eksv2.CreateClusterInput{
		Name:    awsv2.String(name),
		RoleArn: awsv2.String(roleARN),
		ResourcesVpcConfig: &types.VpcConfigRequest{
			SubnetIds:        vpc.SubnetIDs,
			SecurityGroupIds: vpc.SecurityGroupIDs,
		},
	}
	if version != "" {
		in.Version = awsv2.String(version)
	}
	return api.CreateCluster(ctx, in)
}

// DeleteCluster deletes the given EKS cluster.
func DeleteCluster(ctx context.Context, api API, name string) (*eksv2.DeleteClusterOutput, error) {
	log.Debugf("deleting EKS cluster %s", name)
	return api.DeleteCluster(ctx, &eksv2.DeleteClusterInput{Name: awsv2.String(name)})
}

// TerminateRandomNodes terminates count worker nodes of the given
// cluster, picked uniformly at random among the running instances in
// the <cluster>-workers security group, and waits for each to reach the
// terminated state within the timeout.
func TerminateRandomNodes(ctx context.Context, api ec2.API, cluster string,
	count int, timeout time.Duration) error {
	candidates, err := workerNodes(ctx, api, cluster)
	if err != nil {
		return err
	}
	if count <= 0 || count > len(candidates) {
		return fmt.Errorf("cannot terminate %d nodes out of %d running in cluster %s",
			count, len(candidates), cluster)
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, id := range candidates[:count] {
		log.Infof("terminating node %s", id)
		if _, err := ec2.TerminateInstance(ctx, api, id); err != nil {
			return err
		}
		if err := waitTerminated(ctx, api, id, timeout); err != nil {
			return err
		}
	}
	return nil
}

func workerNodes(ctx context.Context, api ec2.API, cluster string) ([]string, error) {
	paginator := ec2v2.NewDescribeInstancesPaginator(api, &ec2v2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{
				Name:   awsv2.String("instance-state-name"),
				Values: []string{"running"},
			},
			{
				Name:   awsv2.String("network-interface.group-name"),
				Values: []string{cluster + "-workers"},
			},
		},
	})
	var ids []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, r := range page.Reservations {
			for _, inst := range r.Instances {
				ids = append(ids, awsv2.ToString(inst.InstanceId))
			}
		}
	}
	return ids, nil
}

func instanceState(ctx context.Context, api ec2.API, id string) (ec2types.InstanceStateName, error) {
	out, err := api.DescribeInstances(ctx, &ec2v2.DescribeInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		return "", err
	}
	if len(out.Reservations) != 1 || len(out.Reservations[0].Instances) != 1 {
		return "", fmt.Errorf("unexpected reservation layout describing instance %s", id)
	}
	return out.Reservations[0].Instances[0].State.Name, nil
}

func waitTerminated(ctx context.Context, api ec2.API, id string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for {
		state, err := instanceState(ctx, api, id)
		if err != nil {
			return err
		}
		if state == ec2types.InstanceStateNameTerminated {
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for node %s to terminate", id)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(terminatePollInterval):
		}
	}
}
