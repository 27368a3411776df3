// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package cloudwatch

import (
	"context"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cwv2 "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	ebv2 "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	ebtypes "github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCW struct {
	alarms     []cwtypes.MetricAlarm
	datapoints []cwtypes.Datapoint

	setStateCalls []*cwv2.SetAlarmStateInput
	statCalls     []*cwv2.GetMetricStatisticsInput
}

func (f *fakeCW) SetAlarmState(_ context.Context, params *cwv2.SetAlarmStateInput,
	_ ...func(*cwv2.Options)) (*cwv2.SetAlarmStateOutput, error) {
	f.setStateCalls = append(f.setStateCalls, params)
	return &cwv2.SetAlarmStateOutput{}, nil
}

func (f *fakeCW) DescribeAlarms(_ context.Context, _ *cwv2.DescribeAlarmsInput,
	_ ...func(*cwv2.Options)) (*cwv2.DescribeAlarmsOutput, error) {
	return &cwv2.DescribeAlarmsOutput{MetricAlarms: f.alarms}, nil
}

func (f *fakeCW) GetMetricStatistics(_ context.Context, params *cwv2.GetMetricStatisticsInput,
	_ ...func(*cwv2.Options)) (*cwv2.GetMetricStatisticsOutput, error) {
	f.statCalls = append(f.statCalls, params)
	return &cwv2.GetMetricStatisticsOutput{Datapoints: f.datapoints}, nil
}

type fakeEvents struct {
	targetPages []*ebv2.ListTargetsByRuleOutput
	pageIdx     int

	putRuleCalls []*ebv2.PutRuleInput
	putTargets   []*ebv2.PutTargetsInput
	enableCalls  []*ebv2.EnableRuleInput
	disableCalls []*ebv2.DisableRuleInput
	deleteCalls  []*ebv2.DeleteRuleInput
	removeCalls  []*ebv2.RemoveTargetsInput
}

func (f *fakeEvents) PutRule(_ context.Context, params *ebv2.PutRuleInput,
	_ ...func(*ebv2.Options)) (*ebv2.PutRuleOutput, error) {
	f.putRuleCalls = append(f.putRuleCalls, params)
	return &ebv2.PutRuleOutput{RuleArn: awsv2.String("arn:rule/" + awsv2.ToString(params.Name))}, nil
}

func (f *fakeEvents) PutTargets(_ context.Context, params *ebv2.PutTargetsInput,
	_ ...func(*ebv2.Options)) (*ebv2.PutTargetsOutput, error) {
	f.putTargets = append(f.putTargets, params)
	return &ebv2.PutTargetsOutput{}, nil
}

func (f *fakeEvents) EnableRule(_ context.Context, params *ebv2.EnableRuleInput,
	_ ...func(*ebv2.Options)) (*ebv2.EnableRuleOutput, error) {
	f.enableCalls = append(f.enableCalls, params)
	return &ebv2.EnableRuleOutput{}, nil
}

func (f *fakeEvents) DisableRule(_ context.Context, params *ebv2.DisableRuleInput,
	_ ...func(*ebv2.Options)) (*ebv2.DisableRuleOutput, error) {
	f.disableCalls = append(f.disableCalls, params)
	return &ebv2.DisableRuleOutput{}, nil
}

func (f *fakeEvents) DeleteRule(_ context.Context, params *ebv2.DeleteRuleInput,
	_ ...func(*ebv2.Options)) (*ebv2.DeleteRuleOutput, error) {
	f.deleteCalls = append(f.deleteCalls, params)
	return &ebv2.DeleteRuleOutput{}, nil
}

func (f *fakeEvents) RemoveTargets(_ context.Context, params *ebv2.RemoveTargetsInput,
	_ ...func(*ebv2.Options)) (*ebv2.RemoveTargetsOutput, error) {
	f.removeCalls = append(f.removeCalls, params)
	return &ebv2.RemoveTargetsOutput{}, nil
}

func (f *fakeEvents) ListTargetsByRule(_ context.Context, _ *ebv2.ListTargetsByRuleInput,
	_ ...func(*ebv2.Options)) (*ebv2.ListTargetsByRuleOutput, error) {
	if f.pageIdx >= len(f.targetPages) {
		return &ebv2.ListTargetsByRuleOutput{}, nil
	}
	page := f.targetPages[f.pageIdx]
	f.pageIdx++
	return page, nil
}

func target(id string) ebtypes.Target {
	return ebtypes.Target{Id: awsv2.String(id), Arn: awsv2.String("arn:target/" + id)}
}

func TestPutRule(t *testing.T) {
	fake := &fakeEvents{}
	_, err := PutRule(context.Background(), fake, "every-minute", PutRuleOptions{
		ScheduleExpression: "rate(1 minute)",
		State:              ebtypes.RuleStateEnabled,
	})
	require.NoError(t, err)
	require.Len(t, fake.putRuleCalls, 1)
	call := fake.putRuleCalls[0]
	assert.Equal(t, "rate(1 minute)", awsv2.ToString(call.ScheduleExpression))
	assert.Equal(t, ebtypes.RuleStateEnabled, call.State)
	assert.Nil(t, call.EventPattern)
}

func TestDeleteRuleForceRemovesTargets(t *testing.T) {
	fake := &fakeEvents{targetPages: []*ebv2.ListTargetsByRuleOutput{
		{
			Targets:   []ebtypes.Target{target("t1")},
			NextToken: awsv2.String("tok"),
		},
		{Targets: []ebtypes.Target{target("t2")}},
	}}
	_, err := DeleteRule(context.Background(), fake, "every-minute", true)
	require.NoError(t, err)
	require.Len(t, fake.removeCalls, 1)
	assert.Equal(t, []string{"t1", "t2"}, fake.removeCalls[0].Ids)
	require.Len(t, fake.deleteCalls, 1)
}

func TestDeleteRuleNoForce(t *testing.T) {
	fake := &fakeEvents{}
	_, err := DeleteRule(context.Background(), fake, "every-minute", false)
	require.NoError(t, err)
	assert.Empty(t, fake.removeCalls)
	require.Len(t, fake.deleteCalls, 1)
}

func TestRemoveRuleTargetsDefaultsToAll(t *testing.T) {
	fake := &fakeEvents{targetPages: []*ebv2.ListTargetsByRuleOutput{
		{Targets: []ebtypes.Target{target("t1"), target("t2")}},
	}}
	_, err := RemoveRuleTargets(context.Background(), fake, "every-minute", nil)
	require.NoError(t, err)
	require.Len(t, fake.removeCalls, 1)
	assert.Equal(t, []string{"t1", "t2"}, fake.removeCalls[0].Ids)
}

func TestEnableDisableRule(t *testing.T) {
	fake := &fakeEvents{}
	_, err := EnableRule(context.Background(), fake, "every-minute")
	require.NoError(t, err)
	_, err = DisableRule(context.Background(), fake, "every-minute")
	require.NoError(t, err)
	require.Len(t, fake.enableCalls, 1)
	require.Len(t, fake.disableCalls, 1)
}

func TestSetAlarmStateDefaultReason(t *testing.T) {
	fake := &fakeCW{}
	err := SetAlarmState(context.Background(), fake, "cpu-high", cwtypes.StateValueAlarm, "", "")
	require.NoError(t, err)
	require.Len(t, fake.setStateCalls, 1)
	call := fake.setStateCalls[0]
	assert.Equal(t, cwtypes.StateValueAlarm, call.StateValue)
	assert.Equal(t, DefaultStateReason, awsv2.ToString(call.StateReason))
	assert.Nil(t, call.StateReasonData)
}

func TestSetAlarmStateInvalid(t *testing.T) {
	err := SetAlarmState(context.Background(), &fakeCW{}, "cpu-high", "BROKEN", "", "")
	require.ErrorContains(t, err, "BROKEN is not a valid alarm state")
}

func TestGetAlarmStateValue(t *testing.T) {
	fake := &fakeCW{alarms: []cwtypes.MetricAlarm{
		{StateValue: cwtypes.StateValueOk},
	}}
	got, err := GetAlarmStateValue(context.Background(), fake, "cpu-high")
	require.NoError(t, err)
	assert.Equal(t, cwtypes.StateValueOk, got)
}

func TestGetAlarmStateValueMissing(t *testing.T) {
	_, err := GetAlarmStateValue(context.Background(), &fakeCW{}, "cpu-high")
	require.ErrorContains(t, err, "CloudWatch alarm name cpu-high not found")
}

func TestGetMetricStatisticsWindow(t *testing.T) {
	restore := timeNow
	now := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return now }
	defer func() { timeNow = restore }()

	fake := &fakeCW{datapoints: []cwtypes.Datapoint{
		{Average: awsv2.Float64(42.5)},
	}}
	got, err := GetMetricStatistics(context.Background(), fake, MetricQuery{
		Namespace:      "AWS/EC2",
		MetricName:     "CPUUtilization",
		DimensionName:  "InstanceId",
		DimensionValue: "i-1",
		Duration:       time.Minute,
		Offset:         30 * time.Second,
		Statistic:      cwtypes.StatisticAverage,
	})
	require.NoError(t, err)
	assert.Equal(t, 42.5, got)

	require.Len(t, fake.statCalls, 1)
	call := fake.statCalls[0]
	assert.Equal(t, now.Add(-30*time.Second), awsv2.ToTime(call.EndTime))
	assert.Equal(t, now.Add(-90*time.Second), awsv2.ToTime(call.StartTime))
	assert.Equal(t, int32(60), awsv2.ToInt32(call.Period))
}

func TestGetMetricStatisticsExtended(t *testing.T) {
	fake := &fakeCW{datapoints: []cwtypes.Datapoint{
		{ExtendedStatistics: map[string]float64{"p99": 1.25}},
	}}
	got, err := GetMetricStatistics(context.Background(), fake, MetricQuery{
		Namespace:         "AWS/ELB",
		MetricName:        "Latency",
		DimensionName:     "LoadBalancerName",
		DimensionValue:    "web",
		ExtendedStatistic: "p99",
	})
	require.NoError(t, err)
	assert.Equal(t, 1.25, got)
}

func TestGetMetricStatisticsRequiresOneStatistic(t *testing.T) {
	_, err := GetMetricStatistics(context.Background(), &fakeCW{}, MetricQuery{})
	require.ErrorContains(t, err, "you must supply one of statistic or extended statistic")

	_, err = GetMetricStatistics(context.Background(), &fakeCW{}, MetricQuery{
		Statistic:         cwtypes.StatisticSum,
		ExtendedStatistic: "p99",
	})
	require.ErrorContains(t, err, "you must supply one of statistic or extended statistic")
}

func TestGetMetricStatisticsNoDatapoints(t *testing.T) {
	_, err := GetMetricStatistics(context.Background(), &fakeCW{}, MetricQuery{
		Namespace:      "AWS/EC2",
		MetricName:     "CPUUtilization",
		DimensionName:  "InstanceId",
		DimensionValue: "i-1",
		Statistic:      cwtypes.StatisticAverage,
	})
	require.ErrorContains(t, err, "no datapoints found for metric AWS/EC2.CPUUtilization.InstanceId.i-1")
}
