// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package cloudwatch

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cwv2 "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	ebv2 "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	ebtypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// DefaultStateReason is recorded on alarms whose state this package
// changes when the caller does not provide a reason.
const DefaultStateReason = "Chaos Toolkit Experiment"

// PutRuleOptions carries the optional attributes of PutRule. Zero
// values are omitted from the request.
type PutRuleOptions struct {
	ScheduleExpression string
	EventPattern       string
	State              ebtypes.RuleState
	Description        string
	RoleARN            string
}

// PutRule creates or updates an event rule.
func PutRule(ctx context.Context, api EventsAPI, ruleName string,
	opts PutRuleOptions) (*ebv2.PutRuleOutput, error) {
	in := &ebv2.PutRuleInput{Name: awsv2.String(ruleName)}
	if opts.ScheduleExpression != "" {
		in.ScheduleExpression = awsv2.String(opts.ScheduleExpression)
	}
	if opts.EventPattern != "" {
		in.EventPattern = awsv2.String(opts.EventPattern)
	}
	if opts.State != "" {
		in.State = opts.State
	}
	if opts.Description != "" {
		in.Description = awsv2.String(opts.Description)
	}
	if opts.RoleARN != "" {
		in.RoleArn = awsv2.String(opts.RoleARN)
	}
	return api.PutRule(ctx, in)
}

// PutRuleTargets creates or updates the targets of an event rule.
func PutRuleTargets(ctx context.Context, api EventsAPI, ruleName string,
	targets []ebtypes.Target) (*ebv2.PutTargetsOutput, error) {
	return api.PutTargets(ctx, &ebv2.PutTargetsInput{
		Rule:    awsv2.String(ruleName),
		Targets: targets,
	})
}

// EnableRule enables an event rule.
func EnableRule(ctx context.Context, api EventsAPI, ruleName string) (*ebv2.EnableRuleOutput, error) {
	return api.EnableRule(ctx, &ebv2.EnableRuleInput{Name: awsv2.String(ruleName)})
}

// DisableRule disables an event rule.
func DisableRule(ctx context.Context, api EventsAPI, ruleName string) (*ebv2.DisableRuleOutput, error) {
	return api.DisableRule(ctx, &ebv2.DisableRuleInput{Name: awsv2.String(ruleName)})
}

// DeleteRule deletes an event rule. Targets must be removed first;
// force removes them all before deleting.
func DeleteRule(ctx context.Context, api EventsAPI, ruleName string,
	force bool) (*ebv2.DeleteRuleOutput, error) {
	if force {
		ids, err := ruleTargetIDs(ctx, api, ruleName)
		if err != nil {
			return nil, err
		}
		if len(ids) > 0 {
			if _, err := removeTargets(ctx, api, ruleName, ids); err != nil {
				return nil, err
			}
		}
	}
	return api.DeleteRule(ctx, &ebv2.DeleteRuleInput{Name: awsv2.String(ruleName)})
}

// RemoveRuleTargets removes targets from an event rule. With no ids
// every target is removed.
func RemoveRuleTargets(ctx context.Context, api EventsAPI, ruleName string,
	targetIDs []string) (*ebv2.RemoveTargetsOutput, error) {
	if targetIDs == nil {
		var err error
		targetIDs, err = ruleTargetIDs(ctx, api, ruleName)
		if err != nil {
			return nil, err
		}
	}
	return removeTargets(ctx, api, ruleName, targetIDs)
}

func removeTargets(ctx context.Context, api EventsAPI, ruleName string,
	ids []string) (*ebv2.RemoveTargetsOutput, error) {
	log.Debugf("removing %d targets from rule %s: %v", len(ids), ruleName, ids)
	return api.RemoveTargets(ctx, &ebv2.RemoveTargetsInput{
		Rule: awsv2.String(ruleName),
		Ids:  ids,
	})
}

// SetAlarmState temporarily sets the state of an alarm.
func SetAlarmState(ctx context.Context, api API, alarmName string,
	state cwtypes.StateValue, reason, reasonData string) error {
	switch state {
	case cwtypes.StateValueOk, cwtypes.StateValueAlarm, cwtypes.StateValueInsufficientData:
	default:
		return fmt.Errorf("%s is not a valid alarm state (%v)", state, cwtypes.StateValueOk.Values())
	}
	if reason == "" {
		reason = DefaultStateReason
	}

	in := &cwv2.SetAlarmStateInput{
		AlarmName:   awsv2.String(alarmName),
		StateValue:  state,
		StateReason: awsv2.String(reason),
	}
	if reasonData != "" {
		in.StateReasonData = awsv2.String(reasonData)
	}
	_, err := api.SetAlarmState(ctx, in)
	return err
}
