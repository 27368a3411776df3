// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverCatalogIsWellFormed(t *testing.T) {
	activities := Discover()
	require.NotEmpty(t, activities)

	seen := make(map[string]bool, len(activities))
	for _, a := range activities {
		key := a.Module + "." + a.Name
		assert.False(t, seen[key], "duplicate activity %s", key)
		seen[key] = true

		assert.NotEmpty(t, a.Name, "%s has no name", key)
		assert.NotEmpty(t, a.Description, "%s has no description", key)
		assert.Contains(t, []Kind{KindAction, KindProbe}, a.Kind, "%s has bad kind", key)
		require.NotNil(t, a.Func, "%s has no function", key)
		assert.Equal(t, reflect.Func, reflect.TypeOf(a.Func).Kind(), "%s is not a function", key)
	}
}

func TestDiscoverCoversEveryModule(t *testing.T) {
	modules := make(map[string]int)
	for _, a := range Discover() {
		modules[a.Module]++
	}
	for _, m := range []string{
		"ec2", "asg", "ecs", "eks", "emr", "msk", "rds", "elasticache",
		"awslambda", "elbv2", "s3", "route53", "ssm", "cloudwatch",
		"xray", "fis", "iam", "ec2os",
	} {
		assert.NotZero(t, modules[m], fmt.Sprintf("no activities for module %s", m))
	}
}
