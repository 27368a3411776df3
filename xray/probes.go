// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package xray

import (
	"context"
	"fmt"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	xrayv2 "github.com/aws/aws-sdk-go-v2/service/xray"
	"github.com/aws/aws-sdk-go-v2/service/xray/types"
	"github.com/tidwall/gjson"

	"github.com/chaosaws/chaosaws/internal/log"
)

// batchTraceLimit is the cap the BatchGetTraces API puts on a single
// request.
const batchTraceLimit = 5

// TraceQuery selects the traces a probe looks at. StartTime and
// EndTime take the forms parseTime accepts; the zero value means the
// last three minutes of traces in the Default group.
type TraceQuery struct {
	StartTime        string
	EndTime          string
	TimeRangeType    types.TimeRangeType
	FilterExpression string
	Sampling         bool
	SamplingStrategy *types.SamplingStrategy
}

func (q TraceQuery) withDefaults() TraceQuery {
	if q.StartTime == "" {
		q.StartTime = "3 minutes"
	}
	if q.EndTime == "" {
		q.EndTime = "now"
	}
	if q.TimeRangeType == "" {
		q.TimeRangeType = types.TimeRangeTypeTraceId
	}
	if q.FilterExpression == "" {
		q.FilterExpression = `groupname = "Default"`
	}
	return q
}

// GetTraceSummaries returns the trace summaries within the query time
// range. Narrow the window or the filter expression before pointing
// this at a busy system.
func GetTraceSummaries(ctx context.Context, api API, q TraceQuery) (*xrayv2.GetTraceSummariesOutput, error) {
	q = q.withDefaults()
	end, err := parseTime(q.EndTime, time.Time{})
	if err != nil {
		return nil, err
	}
	start, err := parseTime(q.StartTime, end)
	if err != nil {
		return nil, err
	}

	log.Debugf("requesting traces between %s and %s", start, end)
	out, err := api.GetTraceSummaries(ctx, &xrayv2.GetTraceSummariesInput{
		StartTime:        awsv2.Time(start),
		EndTime:          awsv2.Time(end),
		TimeRangeType:    q.TimeRangeType,
		FilterExpression: awsv2.String(q.FilterExpression),
		Sampling:         awsv2.Bool(q.Sampling),
		SamplingStrategy: q.SamplingStrategy,
	})
	if err != nil {
		return nil, fmt.Errorf("x-ray trace summaries failed: %w", err)
	}
	return out, nil
}

// GetTraces returns up to quantity full traces matching the query,
// newest first. The service caps a batch at five traces.
func GetTraces(ctx context.Context, api API, q TraceQuery, quantity int) (*xrayv2.BatchGetTracesOutput, error) {
	summaries, err := GetTraceSummaries(ctx, api, q)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 || quantity > batchTraceLimit {
		quantity = batchTraceLimit
	}

	ids := make([]string, 0, quantity)
	all := summaries.TraceSummaries
	for i := max(0, len(all)-quantity); i < len(all); i++ {
		ids = append(ids, awsv2.ToString(all[i].Id))
	}

	out, err := api.BatchGetTraces(ctx, &xrayv2.BatchGetTracesInput{TraceIds: ids})
	if err != nil {
		return nil, fmt.Errorf("x-ray batch traces failed: %w", err)
	}
	return out, nil
}

// GetMostRecentTrace returns the newest trace matching the query.
func GetMostRecentTrace(ctx context.Context, api API, q TraceQuery) (*xrayv2.BatchGetTracesOutput, error) {
	return GetTraces(ctx, api, q, 1)
}

// GetMostRecentTraceSegments returns the newest trace's segment
// documents decoded from their JSON form.
func GetMostRecentTraceSegments(ctx context.Context, api API, q TraceQuery) ([]any, error) {
	out, err := GetMostRecentTrace(ctx, api, q)
	if err != nil {
		return nil, err
	}
	if len(out.Traces) == 0 {
		return nil, nil
	}

	var segments []any
	for _, s := range out.Traces[0].Segments {
		doc := awsv2.ToString(s.Document)
		if !gjson.Valid(doc) {
			return nil, fmt.Errorf("invalid segment document in trace %s",
				awsv2.ToString(out.Traces[0].Id))
		}
		segments = append(segments, gjson.Parse(doc).Value())
	}
	return segments, nil
}

// GetServiceGraph returns the service graph of a group over the given
// window.
func GetServiceGraph(ctx context.Context, api API, startTime, endTime, groupName,
	groupARN string) (*xrayv2.GetServiceGraphOutput, error) {
	if endTime == "" {
		endTime = "now"
	}
	if startTime == "" {
		startTime = "3 minutes"
	}
	end, err := parseTime(endTime, time.Time{})
	if err != nil {
		return nil, err
	}
	start, err := parseTime(startTime, end)
	if err != nil {
		return nil, err
	}

	in := &xrayv2.GetServiceGraphInput{
		StartTime: awsv2.Time(start),
		EndTime:   awsv2.Time(end),
	}
	if groupARN != "" {
		in.GroupARN = awsv2.String(groupARN)
	} else {
		if groupName == "" {
			groupName = "Default"
		}
		in.GroupName = awsv2.String(groupName)
	}

	log.Debugf("requesting service graph between %s and %s", start, end)
	out, err := api.GetServiceGraph(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("x-ray service graph failed: %w", err)
	}
	return out, nil
}
