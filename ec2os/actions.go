// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package ec2os

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/dustin/go-humanize"

	"github.com/chaosaws/chaosaws/internal/log"
)

const (
	shellDocument      = "AWS-RunShellScript"
	powerShellDocument = "AWS-RunPowerShellScript"
	remoteDocument     = "AWS-RunRemoteScript"

	defaultDevice = "eth0"
)

// commandGrace is how long past the fault duration a command may keep
// running before the poller gives up on it.
var commandGrace = 30 * time.Second

// pollFloor is the minimum interval between invocation polls.
var pollFloor = time.Second

// BurnCPU spins all cores of the given instances at 100% for the
// duration.
func BurnCPU(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, duration time.Duration) (map[string]string, error) {
	return runScript(ctx, cmdAPI, instAPI, "burn_cpu", instanceIDs,
		map[string]string{"duration": seconds(duration)}, duration)
}

// FillDisk writes sizeMB megabytes of random data on each instance and
// keeps the file around for the duration before removing it.
func FillDisk(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, duration time.Duration, sizeMB int) (map[string]string, error) {
	log.Infof("filling disk with %s on %d instance(s)",
		humanize.IBytes(uint64(sizeMB)*1024*1024), len(instanceIDs))
	return runScript(ctx, cmdAPI, instAPI, "fill_disk", instanceIDs,
		map[string]string{
			"duration": seconds(duration),
			"size":     strconv.Itoa(sizeMB),
		}, duration)
}

// BurnIO hammers the disk of the given instances with synchronous
// writes for the duration.
func BurnIO(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, duration time.Duration) (map[string]string, error) {
	return runScript(ctx, cmdAPI, instAPI, "burn_io", instanceIDs,
		map[string]string{"duration": seconds(duration)}, duration)
}

// NetworkLatency adds delay and jitter to the egress traffic of the
// given instances for the duration. An empty device defaults to eth0.
func NetworkLatency(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, duration, delay, jitter time.Duration, device string) (map[string]string, error) {
	param := fmt.Sprintf("delay %dms %dms", delay.Milliseconds(), jitter.Milliseconds())
	return networkUtil(ctx, cmdAPI, instAPI, instanceIDs, duration, param, device)
}

// NetworkLoss drops the given ratio (e.g. "5%") of the egress packets
// of the given instances for the duration.
func NetworkLoss(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, duration time.Duration, lossRatio, device string) (map[string]string, error) {
	return networkUtil(ctx, cmdAPI, instAPI, instanceIDs, duration, "loss "+lossRatio, device)
}

// NetworkCorruption corrupts the given ratio (e.g. "5%") of the egress
// packets of the given instances for the duration.
func NetworkCorruption(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, duration time.Duration, corruptionRatio, device string) (map[string]string, error) {
	return networkUtil(ctx, cmdAPI, instAPI, instanceIDs, duration, "corrupt "+corruptionRatio, device)
}

// NetworkAdvanced applies a caller-supplied tc netem discipline (e.g.
// "delay 300ms reorder 30% 50%") for the duration.
func NetworkAdvanced(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, duration time.Duration, command, device string) (map[string]string, error) {
	if command == "" {
		return nil, fmt.Errorf("you must specify the netem parameters to apply")
	}
	return networkUtil(ctx, cmdAPI, instAPI, instanceIDs, duration, command, device)
}

func networkUtil(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, duration time.Duration, param, device string) (map[string]string, error) {
	if device == "" {
		device = defaultDevice
	}
	return runScript(ctx, cmdAPI, instAPI, "network_util", instanceIDs,
		map[string]string{
			"duration": seconds(duration),
			"param":    param,
			"device":   device,
		}, duration)
}

// KillProcess sends the given signal (default SIGTERM) to every process
// matching the name on the given instances.
func KillProcess(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	instanceIDs []string, processName, signal string) (map[string]string, error) {
	if processName == "" {
		return nil, fmt.Errorf("you must specify the process name to kill")
	}
	if signal == "" {
		signal = "SIGTERM"
	}
	return runScript(ctx, cmdAPI, instAPI, "kill_process", instanceIDs,
		map[string]string{
			"process_name": processName,
			"signal":       signal,
		}, 0)
}

// OSAdvanced runs a caller-supplied script fetched from S3 on the given
// instances through the AWS-RunRemoteScript document.
func OSAdvanced(ctx context.Context, cmdAPI CommandAPI, instanceIDs []string,
	sourcePath, commandLine string, timeout time.Duration) (map[string]string, error) {
	if sourcePath == "" || commandLine == "" {
		return nil, fmt.Errorf("you must specify the script source path and command line")
	}
	if timeout <= 0 {
		timeout = time.Minute
	}

	results := make(map[string]string, len(instanceIDs))
	for _, instanceID := range instanceIDs {
		out, err := cmdAPI.SendCommand(ctx, &ssmv2.SendCommandInput{
			DocumentName: awsv2.String(remoteDocument),
			InstanceIds:  []string{instanceID},
			Parameters: map[string][]string{
				"sourceType":       {"S3"},
				"sourceInfo":       {fmt.Sprintf(`{"path": %q}`, sourcePath)},
				"commandLine":      {commandLine},
				"executionTimeout": {seconds(timeout)},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed running remote script on %s: %w", instanceID, err)
		}
		output, err := awaitCommand(ctx, cmdAPI,
			awsv2.ToString(out.Command.CommandId), instanceID, timeout)
		if err != nil {
			return nil, err
		}
		results[instanceID] = output
	}
	return results, nil
}

// runScript resolves the platform of each instance, sends the matching
// embedded script through Run Command and waits for every invocation to
// finish. The returned map holds the command output per instance id.
func runScript(ctx context.Context, cmdAPI CommandAPI, instAPI InstanceAPI,
	action string, instanceIDs []string, params map[string]string,
	duration time.Duration) (map[string]string, error) {
	if len(instanceIDs) == 0 {
		return nil, fmt.Errorf("you must specify at least one instance id")
	}

	results := make(map[string]string, len(instanceIDs))
	for _, instanceID := range instanceIDs {
		platform, err := instancePlatform(ctx, instAPI, instanceID)
		if err != nil {
			return nil, err
		}

		withID := make(map[string]string, len(params)+1)
		for k, v := range params {
			withID[k] = v
		}
		withID["instance_id"] = instanceID

		content, err := constructScript(action, platform, withID)
		if err != nil {
			return nil, err
		}

		document := shellDocument
		if platform == platformWindows {
			document = powerShellDocument
		}

		log.Infof("running %s on %s (%s)", action, instanceID, platform)
		out, err := cmdAPI.SendCommand(ctx, &ssmv2.SendCommandInput{
			DocumentName: awsv2.String(document),
			InstanceIds:  []string{instanceID},
			Parameters:   map[string][]string{"commands": {content}},
		})
		if err != nil {
			return nil, fmt.Errorf("failed running %s on %s: %w", action, instanceID, err)
		}

		output, err := awaitCommand(ctx, cmdAPI,
			awsv2.ToString(out.Command.CommandId), instanceID, duration)
		if err != nil {
			return nil, err
		}
		results[instanceID] = output
	}
	return results, nil
}

// awaitCommand polls the invocation until it reaches a terminal status.
// The first poll waits half the fault duration since the command cannot
// finish earlier, then the interval halves down to the floor.
func awaitCommand(ctx context.Context, api CommandAPI, commandID, instanceID string,
	duration time.Duration) (string, error) {
	interval := duration / 2
	if interval < pollFloor {
		interval = pollFloor
	}
	deadline := time.Now().Add(duration + commandGrace)

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(interval):
		}
		if interval /= 2; interval < pollFloor {
			interval = pollFloor
		}

		out, err := api.ListCommandInvocations(ctx, &ssmv2.ListCommandInvocationsInput{
			CommandId:  awsv2.String(commandID),
			InstanceId: awsv2.String(instanceID),
			Details:    true,
		})
		if err != nil {
			return "", err
		}

		for _, invocation := range out.CommandInvocations {
			switch invocation.Status {
			case types.CommandInvocationStatusSuccess:
				return invocationOutput(invocation), nil
			case types.CommandInvocationStatusFailed,
				types.CommandInvocationStatusCancelled,
				types.CommandInvocationStatusTimedOut:
				return "", fmt.Errorf("command %s on %s finished with status %s: %s",
					commandID, instanceID, invocation.Status, invocationOutput(invocation))
			}
		}

		if time.Now().After(deadline) {
			return "", fmt.Errorf("command %s on %s did not finish within %s",
				commandID, instanceID, duration+commandGrace)
		}
	}
}

func invocationOutput(invocation types.CommandInvocation) string {
	var outputs []string
	for _, plugin := range invocation.CommandPlugins {
		if o := awsv2.ToString(plugin.Output); o != "" {
			outputs = append(outputs, strings.TrimSpace(o))
		}
	}
	return strings.Join(outputs, "\n")
}

func seconds(d time.Duration) string {
	return strconv.Itoa(int(d / time.Second))
}
