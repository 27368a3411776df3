// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package ecs exposes chaos actions and probes for Amazon ECS clusters,
// services and tasks.
package ecs

import (
	"context"
	"fmt"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ecsv2 "github.com/aws/aws-sdk-go-v2/service/ecs"
)

// API lists the ECS operations this package invokes.
type API interface {
	ListServices(ctx context.Context, params *ecsv2.ListServicesInput,
		optFns ...func(*ecsv2.Options)) (*ecsv2.ListServicesOutput, error)
	DescribeServices(ctx context.Context, params *ecsv2.DescribeServicesInput,
		optFns ...func(*ecsv2.Options)) (*ecsv2.DescribeServicesOutput, error)
	UpdateService(ctx context.Context, params *ecsv2.UpdateServiceInput,
		optFns ...func(*ecsv2.Options)) (*ecsv2.UpdateServiceOutput, error)
	DeleteService(ctx context.Context, params *ecsv2.DeleteServiceInput,
		optFns ...func(*ecsv2.Options)) (*ecsv2.DeleteServiceOutput, error)
	DeleteCluster(ctx context.Context, params *ecsv2.DeleteClusterInput,
		optFns ...func(*ecsv2.Options)) (*ecsv2.DeleteClusterOutput, error)
	StopTask(ctx context.Context, params *ecsv2.StopTaskInput,
		optFns ...func(*ecsv2.Options)) (*ecsv2.StopTaskOutput, error)
	DeregisterContainerInstance(ctx context.Context, params *ecsv2.DeregisterContainerInstanceInput,
		optFns ...func(*ecsv2.Options)) (*ecsv2.DeregisterContainerInstanceOutput, error)
}

// New constructs an ECS client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*ecsv2.Options)) *ecsv2.Client {
	return ecsv2.NewFromConfig(cfg, optFns...)
}

// listServiceARNs returns every service ARN in the cluster across all
// pages.
func listServiceARNs(ctx context.Context, api API, cluster string) ([]string, error) {
	var arns []string
	paginator := ecsv2.NewListServicesPaginator(api, &ecsv2.ListServicesInput{
		Cluster: awsv2.String(cluster),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		arns = append(arns, page.ServiceArns...)
	}
	return arns, nil
}

// serviceName extracts the service name from its ARN.
func serviceName(arn string) string {
	parts := strings.Split(arn, "/")
	return parts[len(parts)-1]
}

func describeService(ctx context.Context, api API, cluster, service string) (*ecsv2.DescribeServicesOutput, error) {
	out, err := api.DescribeServices(ctx, &ecsv2.DescribeServicesInput{
		Cluster:  awsv2.String(cluster),
		Services: []string{service},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Services) == 0 {
		return nil, fmt.Errorf("no service %q found in cluster %q", service, cluster)
	}
	return out, nil
}
