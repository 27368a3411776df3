// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package eks

import (
	"context"
	"errors"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	eksv2 "github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/eks/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// DescribeCluster describes the given EKS cluster. A missing cluster is
// not an error: the probe returns nil so callers can assert on absence.
func DescribeCluster(ctx context.Context, api API, name string) (*eksv2.DescribeClusterOutput, error) {
	log.Debugf("describing EKS cluster %s", name)
	out, err := api.DescribeCluster(ctx, &eksv2.DescribeClusterInput{
		Name: awsv2.String(name),
	})
	if err != nil {
		var nfe *types.ResourceNotFoundException
		if errors.As(err, &nfe) {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// ListClusters lists the EKS clusters available to the authenticated
// account.
func ListClusters(ctx context.Context, api API) (*eksv2.ListClustersOutput, error) {
	return api.ListClusters(ctx, &eksv2.ListClustersInput{})
}
