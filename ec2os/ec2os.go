// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package ec2os injects operating-system level faults (CPU, disk, IO,
// network, processes) into EC2 instances by running embedded scripts
// through SSM Run Command.
package ec2os

import (
	"context"
	"embed"
	"fmt"
	"sort"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ec2v2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
)

//go:embed scripts
var scriptsFS embed.FS

// CommandAPI lists the SSM operations this package invokes.
type CommandAPI interface {
	SendCommand(ctx context.Context, params *ssmv2.SendCommandInput,
		optFns ...func(*ssmv2.Options)) (*ssmv2.SendCommandOutput, error)
	ListCommandInvocations(ctx context.Context, params *ssmv2.ListCommandInvocationsInput,
		optFns ...func(*ssmv2.Options)) (*ssmv2.ListCommandInvocationsOutput, error)
}

// InstanceAPI lists the EC2 operations this package invokes.
type InstanceAPI interface {
	DescribeInstances(ctx context.Context, params *ec2v2.DescribeInstancesInput,
		optFns ...func(*ec2v2.Options)) (*ec2v2.DescribeInstancesOutput, error)
}

const (
	platformLinux   = "linux"
	platformWindows = "windows"
)

// instancePlatform resolves the OS family of an instance. EC2 only
// reports the Platform field for Windows; its absence means Linux.
func instancePlatform(ctx context.Context, api InstanceAPI, instanceID string) (string, error) {
	instance, err := describeInstance(ctx, api, instanceID)
	if err != nil {
		return "", err
	}
	if instance.Platform == ec2types.PlatformValuesWindows {
		return platformWindows, nil
	}
	return platformLinux, nil
}

func describeInstance(ctx context.Context, api InstanceAPI, instanceID string) (*ec2types.Instance, error) {
	out, err := api.DescribeInstances(ctx, &ec2v2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, err
	}
	for _, reservation := range out.Reservations {
		for _, instance := range reservation.Instances {
			if awsv2.ToString(instance.InstanceId) == instanceID {
				return &instance, nil
			}
		}
	}
	return nil, fmt.Errorf("no instance found with id %s", instanceID)
}

// constructScript prepends the parameters as shell variable assignments
// to the embedded script for the given action and platform, so the
// script body can read them with its own defaults as fallback.
func constructScript(action, platform string, params map[string]string) (string, error) {
	ext, assign := ".sh", "%s='%s'"
	if platform == platformWindows {
		ext, assign = ".ps1", "$%s = '%s'"
	}

	body, err := scriptsFS.ReadFile("scripts/" + action + ext)
	if err != nil {
		return "", fmt.Errorf("no %s script for action %s", platform, action)
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, assign+"\n", k, params[k])
	}
	sb.Write(body)
	return sb.String(), nil
}
