// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package ecs

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ecsv2 "github.com/aws/aws-sdk-go-v2/service/ecs"
	"github.com/aws/aws-sdk-go-v2/service/ecs/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// DefaultStopReason is recorded against tasks stopped by this package
// when the caller does not provide one.
const DefaultStopReason = "Chaos Testing"

// StopTask stops a given ECS task.
func StopTask(ctx context.Context, api API, cluster, taskID, reason string) (*ecsv2.StopTaskOutput, error) {
	if reason == "" {
		reason = DefaultStopReason
	}
	log.Debugf("stopping task %s in cluster %s", taskID, cluster)
	return api.StopTask(ctx, &ecsv2.StopTaskInput{
		Cluster: awsv2.String(cluster),
		Task:    awsv2.String(taskID),
		Reason:  awsv2.String(reason),
	})
}

// DeleteService scales a given ECS service down to zero and deletes it.
func DeleteService(ctx context.Context, api API, cluster, service string) (*ecsv2.DeleteServiceOutput, error) {
	log.Debugf("deleting service %s in cluster %s", service, cluster)
	if _, err := api.UpdateService(ctx, &ecsv2.UpdateServiceInput{
		Cluster:      awsv2.String(cluster),
		Service:      awsv2.String(service),
		DesiredCount: awsv2.Int32(0),
		DeploymentConfiguration: &types.DeploymentConfiguration{
			MaximumPercent:        awsv2.Int32(100),
			MinimumHealthyPercent: awsv2.Int32(0),
		},
	}); err != nil {
		return nil, err
	}
	return api.DeleteService(ctx, &ecsv2.DeleteServiceInput{
		Cluster: awsv2.String(cluster),
		Service: awsv2.String(service),
	})
}

// DeleteRandomService deletes a service picked uniformly at random from
// the cluster.
func DeleteRandomService(ctx context.Context, api API, cluster string) (*ecsv2.DeleteServiceOutput, error) {
	return DeleteRandomServiceMatching(ctx, api, cluster, "")
}

// DeleteRandomServiceMatching deletes a service picked uniformly at
// random among the cluster services whose ARN contains the filter
// substring. An empty filter matches every service.
func DeleteRandomServiceMatching(ctx context.Context, api API, cluster,
	filter string) (*ecsv2.DeleteServiceOutput, error) {
	arns, err := listServiceARNs(ctx, api, cluster)
	if err != nil {
		return nil, err
	}

	var candidates []string
	for _, arn := range arns {
		if filter == "" || strings.Contains(arn, filter) {
			candidates = append(candidates, arn)
		}
	}
	if len(candidates) == 0 {
		if filter != "" {
			return nil, fmt.Errorf("no service matching the filter: %s", filter)
		}
		return nil, fmt.Errorf("no services found in cluster: %s", cluster)
	}

	service := serviceName(candidates[rand.IntN(len(candidates))])
	log.Infof("the service %s will be deleted", service)
	return DeleteService(ctx, api, cluster, service)
}

// DeleteCluster deletes a given ECS cluster.
func DeleteCluster(ctx context.Context, api API, cluster string) (*ecsv2.DeleteClusterOutput, error) {
	log.Debugf("deleting cluster %s", cluster)
	return api.DeleteCluster(ctx, &ecsv2.DeleteClusterInput{
		Cluster: awsv2.String(cluster),
	})
}

// DeregisterContainerInstance deregisters a given ECS container instance.
func DeregisterContainerInstance(ctx context.Context, api API, cluster,
	instanceID string, force bool) (*ecsv2.DeregisterContainerInstanceOutput, error) {
	log.Debugf("deregistering container instance %s in cluster %s", instanceID, cluster)
	return api.DeregisterContainerInstance(ctx, &ecsv2.DeregisterContainerInstanceInput{
		Cluster:           awsv2.String(cluster),
		ContainerInstance: awsv2.String(instanceID),
		Force:             awsv2.Bool(force),
	})
}
