// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package ecs

import (
	"context"
	"fmt"
)

// ServiceIsDeploying reports whether a deployment is in progress for the
// given service.
func ServiceIsDeploying(ctx context.Context, api API, cluster, service string) (bool, error) {
	out, err := describeService(ctx, api, cluster, service)
	if err != nil {
		return false, fmt.Errorf("error retrieving service data from AWS: %w", err)
	}
	return len(out.Services[0].Deployments) > 1, nil
}

// AllDesiredTasksRunning reports whether the desired and running task
// counts of the given service are equal.
func AllDesiredTasksRunning(ctx context.Context, api API, cluster, service string) (bool, error) {
	out, err := describeService(ctx, api, cluster, service)
	if err != nil {
		return false, err
	}
	svc := out.Services[0]
	return svc.DesiredCount == svc.RunningCount, nil
}
