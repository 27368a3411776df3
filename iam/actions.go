// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package iam

import (
	"context"
	"encoding/json"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"

	"github.com/chaosaws/chaosaws/internal/log"
)

// CreatePolicy creates a new IAM policy from the given document.
func CreatePolicy(ctx context.Context, api API, name string, policy map[string]any,
	path, description string) (*iamv2.CreatePolicyOutput, error) {
	document, err := json.Marshal(policy)
	if err != nil {
		return nil, fmt.Errorf("failed creating a policy: %w", err)
	}
	if path == "" {
		path = "/"
	}

	log.Debugf("creating IAM policy %s", name)
	out, err := api.CreatePolicy(ctx, &iamv2.CreatePolicyInput{
		PolicyName:     awsv2.String(name),
		Path:           awsv2.String(path),
		PolicyDocument: awsv2.String(string(document)),
		Description:    awsv2.String(description),
	})
	if err != nil {
		return nil, fmt.Errorf("failed creating a policy: %w", err)
	}
	return out, nil
}

// AttachRolePolicy attaches a policy to a role.
func AttachRolePolicy(ctx context.Context, api API, policyARN,
	roleName string) (*iamv2.AttachRolePolicyOutput, error) {
	out, err := api.AttachRolePolicy(ctx, &iamv2.AttachRolePolicyInput{
		PolicyArn: awsv2.String(policyARN),
		RoleName:  awsv2.String(roleName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed attaching role %q to policy %q: %w",
			roleName, policyARN, err)
	}
	return out, nil
}

// DetachRolePolicy detaches a policy from a role.
func DetachRolePolicy(ctx context.Context, api API, policyARN,
	roleName string) (*iamv2.DetachRolePolicyOutput, error) {
	out, err := api.DetachRolePolicy(ctx, &iamv2.DetachRolePolicyInput{
		PolicyArn: awsv2.String(policyARN),
		RoleName:  awsv2.String(roleName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed detaching role %q from policy %q: %w",
			roleName, policyARN, err)
	}
	return out, nil
}
