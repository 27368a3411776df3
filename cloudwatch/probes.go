// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package cloudwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	cwv2 "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// timeNow is replaced by tests to pin the statistics window.
var timeNow = time.Now

// GetAlarmStateValue returns the state value of an alarm.
func GetAlarmStateValue(ctx context.Context, api API, alarmName string) (cwtypes.StateValue, error) {
	out, err := api.DescribeAlarms(ctx, &cwv2.DescribeAlarmsInput{
		AlarmNames: []string{alarmName},
	})
	if err != nil {
		return "", err
	}
	if len(out.MetricAlarms) == 0 {
		return "", fmt.Errorf("CloudWatch alarm name %s not found", alarmName)
	}
	return out.MetricAlarms[0].StateValue, nil
}

// MetricQuery selects the metric and the statistical calculation for
// GetMetricStatistics. Exactly one of Statistic and ExtendedStatistic
// must be set. The window of the calculation ends offset ago and spans
// duration.
type MetricQuery struct {
	Namespace         string
	MetricName        string
	DimensionName     string
	DimensionValue    string
	Duration          time.Duration
	Offset            time.Duration
	Statistic         cwtypes.Statistic
	ExtendedStatistic string
	Unit              cwtypes.StandardUnit
}

// GetMetricStatistics returns the value of a statistical calculation
// for a given metric. Absence of datapoints fails the probe.
func GetMetricStatistics(ctx context.Context, api API, q MetricQuery) (float64, error) {
	if (q.Statistic == "") == (q.ExtendedStatistic == "") {
		return 0, errors.New("you must supply one of statistic or extended statistic")
	}
	if q.Duration == 0 {
		q.Duration = time.Minute
	}

	end := timeNow().UTC().Add(-q.Offset)
	start := end.Add(-q.Duration)
	in := &cwv2.GetMetricStatisticsInput{
		Namespace:  awsv2.String(q.Namespace),
		MetricName: awsv2.String(q.MetricName),
		Dimensions: []cwtypes.Dimension{{
			Name:  awsv2.String(q.DimensionName),
			Value: awsv2.String(q.DimensionValue),
		}},
		StartTime: awsv2.Time(start),
		EndTime:   awsv2.Time(end),
		Period:    awsv2.Int32(int32(q.Duration / time.Second)),
	}
	if q.Statistic != "" {
		in.Statistics = []cwtypes.Statistic{q.Statistic}
	}
	if q.ExtendedStatistic != "" {
		in.ExtendedStatistics = []string{q.ExtendedStatistic}
	}
	if q.Unit != "" {
		in.Unit = q.Unit
	}

	log.Debugf("fetching %s statistics for %s.%s", q.Statistic, q.Namespace, q.MetricName)
	out, err := api.GetMetricStatistics(ctx, in)
	if err != nil {
		return 0, err
	}
	if len(out.Datapoints) == 0 {
		return 0, fmt.Errorf("no datapoints found for metric %s.%s.%s.%s",
			q.Namespace, q.MetricName, q.DimensionName, q.DimensionValue)
	}

	point := out.Datapoints[0]
	switch {
	case q.Statistic != "":
		value := statisticValue(point, q.Statistic)
		if value == nil {
			return 0, fmt.Errorf("no %s value in datapoint", q.Statistic)
		}
		return *value, nil
	default:
		value, ok := point.ExtendedStatistics[q.ExtendedStatistic]
		if !ok {
			return 0, fmt.Errorf("no %s value in datapoint", q.ExtendedStatistic)
		}
		return value, nil
	}
}

func statisticValue(point cwtypes.Datapoint, statistic cwtypes.Statistic) *float64 {
	switch statistic {
	case cwtypes.StatisticAverage:
		return point.Average
	case cwtypes.StatisticMaximum:
		return point.Maximum
	case cwtypes.StatisticMinimum:
		return point.Minimum
	case cwtypes.StatisticSampleCount:
		return point.SampleCount
	case cwtypes.StatisticSum:
		return point.Sum
	}
	return nil
}
