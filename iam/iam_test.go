// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package iam

import (
	"context"
	"encoding/json"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	iamv2 "github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIAM struct {
	createCalls []*iamv2.CreatePolicyInput
	attachCalls []*iamv2.AttachRolePolicyInput
	detachCalls []*iamv2.DetachRolePolicyInput
}

func (f *fakeIAM) CreatePolicy(_ context.Context, params *iamv2.CreatePolicyInput,
	_ ...func(*iamv2.Options)) (*iamv2.CreatePolicyOutput, error) {
	f.createCalls = append(f.createCalls, params)
	return &iamv2.CreatePolicyOutput{
		Policy: &types.Policy{PolicyName: params.PolicyName},
	}, nil
}

func (f *fakeIAM) AttachRolePolicy(_ context.Context, params *iamv2.AttachRolePolicyInput,
	_ ...func(*iamv2.Options)) (*iamv2.AttachRolePolicyOutput, error) {
	f.attachCalls = append(f.attachCalls, params)
	return &iamv2.AttachRolePolicyOutput{}, nil
}

func (f *fakeIAM) DetachRolePolicy(_ context.Context, params *iamv2.DetachRolePolicyInput,
	_ ...func(*iamv2.Options)) (*iamv2.DetachRolePolicyOutput, error) {
	f.detachCalls = append(f.detachCalls, params)
	return &iamv2.DetachRolePolicyOutput{}, nil
}

func (f *fakeIAM) GetPolicy(_ context.Context, params *iamv2.GetPolicyInput,
	_ ...func(*iamv2.Options)) (*iamv2.GetPolicyOutput, error) {
	return &iamv2.GetPolicyOutput{
		Policy: &types.Policy{Arn: params.PolicyArn},
	}, nil
}

func TestCreatePolicy(t *testing.T) {
	fake := &fakeIAM{}
	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{{
			"Effect":   "Deny",
			"Action":   "s3:*",
			"Resource": "*",
		}},
	}
	_, err := CreatePolicy(context.Background(), fake, "deny-s3", policy, "", "chaos drill")
	require.NoError(t, err)
	require.Len(t, fake.createCalls, 1)
	call := fake.createCalls[0]
	assert.Equal(t, "deny-s3", awsv2.ToString(call.PolicyName))
	assert.Equal(t, "/", awsv2.ToString(call.Path))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(awsv2.ToString(call.PolicyDocument)), &decoded))
	assert.Equal(t, "2012-10-17", decoded["Version"])
}

func TestAttachRolePolicy(t *testing.T) {
	fake := &fakeIAM{}
	_, err := AttachRolePolicy(context.Background(), fake,
		"arn:aws:iam::012345678901:policy/deny-s3", "app-role")
	require.NoError(t, err)
	require.Len(t, fake.attachCalls, 1)
	assert.Equal(t, "app-role", awsv2.ToString(fake.attachCalls[0].RoleName))
}

func TestDetachRolePolicy(t *testing.T) {
	fake := &fakeIAM{}
	_, err := DetachRolePolicy(context.Background(), fake,
		"arn:aws:iam::012345678901:policy/deny-s3", "app-role")
	require.NoError(t, err)
	require.Len(t, fake.detachCalls, 1)
}

func TestGetPolicy(t *testing.T) {
	out, err := GetPolicy(context.Background(), &fakeIAM{},
		"arn:aws:iam::012345678901:policy/deny-s3")
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::012345678901:policy/deny-s3",
		awsv2.ToString(out.Policy.Arn))
}
