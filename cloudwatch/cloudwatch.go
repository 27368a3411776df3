// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package cloudwatch exposes chaos actions and probes for CloudWatch
// alarms and metrics, and for the event rules that drive them.
package cloudwatch

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cwv2 "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	ebv2 "github.com/aws/aws-sdk-go-v2/service/eventbridge"
)

// API lists the CloudWatch operations this package invokes.
type API interface {
	SetAlarmState(ctx context.Context, params *cwv2.SetAlarmStateInput,
		optFns ...func(*cwv2.Options)) (*cwv2.SetAlarmStateOutput, error)
	DescribeAlarms(ctx context.Context, params *cwv2.DescribeAlarmsInput,
		optFns ...func(*cwv2.Options)) (*cwv2.DescribeAlarmsOutput, error)
	GetMetricStatistics(ctx context.Context, params *cwv2.GetMetricStatisticsInput,
		optFns ...func(*cwv2.Options)) (*cwv2.GetMetricStatisticsOutput, error)
}

// EventsAPI lists the EventBridge operations this package invokes for
// rule management.
type EventsAPI interface {
	PutRule(ctx context.Context, params *ebv2.PutRuleInput,
		optFns ...func(*ebv2.Options)) (*ebv2.PutRuleOutput, error)
	PutTargets(ctx context.Context, params *ebv2.PutTargetsInput,
		optFns ...func(*ebv2.Options)) (*ebv2.PutTargetsOutput, error)
	EnableRule(ctx context.Context, params *ebv2.EnableRuleInput,
		optFns ...func(*ebv2.Options)) (*ebv2.EnableRuleOutput, error)
	DisableRule(ctx context.Context, params *ebv2.DisableRuleInput,
		optFns ...func(*ebv2.Options)) (*ebv2.DisableRuleOutput, error)
	DeleteRule(ctx context.Context, params *ebv2.DeleteRuleInput,
		optFns ...func(*ebv2.Options)) (*ebv2.DeleteRuleOutput, error)
	RemoveTargets(ctx context.Context, params *ebv2.RemoveTargetsInput,
		optFns ...func(*ebv2.Options)) (*ebv2.RemoveTargetsOutput, error)
	ListTargetsByRule(ctx context.Context, params *ebv2.ListTargetsByRuleInput,
		optFns ...func(*ebv2.Options)) (*ebv2.ListTargetsByRuleOutput, error)
}

// New constructs a CloudWatch client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*cwv2.Options)) *cwv2.Client {
	return cwv2.NewFromConfig(cfg, optFns...)
}

// NewEvents constructs an EventBridge client from the provided config.
func NewEvents(cfg awsv2.Config, optFns ...func(*ebv2.Options)) *ebv2.Client {
	return ebv2.NewFromConfig(cfg, optFns...)
}

// ruleTargetIDs returns every target id attached to a rule across all
// pages.
func ruleTargetIDs(ctx context.Context, api EventsAPI, ruleName string) ([]string, error) {
	var ids []string
	var token *string
	for {
		out, err := api.ListTargetsByRule(ctx, &ebv2.ListTargetsByRuleInput{
			Rule:      awsv2.String(ruleName),
			NextToken: token,
		})
		if err != nil {
			return nil, err
		}
		for _, t := range out.Targets {
			ids = append(ids, awsv2.ToString(t.Id))
		}
		if out.NextToken == nil {
			return ids, nil
		}
		token = out.NextToken
	}
}
