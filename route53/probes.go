// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package route53

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	r53v2 "github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
)

// GetHostedZone returns the details of the given hosted zone.
func GetHostedZone(ctx context.Context, api API, zoneID string) (*r53v2.GetHostedZoneOutput, error) {
	out, err := api.GetHostedZone(ctx, &r53v2.GetHostedZoneInput{
		Id: awsv2.String(zoneID),
	})
	if err != nil {
		return nil, err
	}
	if out.HostedZone == nil {
		return nil, fmt.Errorf("hosted zone %s not found", zoneID)
	}
	return out, nil
}

// GetHealthCheckStatus returns the latest observations of the given
// health check. A check with no observations fails the probe.
func GetHealthCheckStatus(ctx context.Context, api API, checkID string) (*r53v2.GetHealthCheckStatusOutput, error) {
	out, err := api.GetHealthCheckStatus(ctx, &r53v2.GetHealthCheckStatusInput{
		HealthCheckId: awsv2.String(checkID),
	})
	if err != nil {
		return nil, err
	}
	if len(out.HealthCheckObservations) == 0 {
		return nil, fmt.Errorf("no results found for %s", checkID)
	}
	return out, nil
}

// GetDNSAnswer simulates a DNS query against the given hosted zone for
// a record name and type.
func GetDNSAnswer(ctx context.Context, api API, zoneID, recordName,
	recordType string) (*r53v2.TestDNSAnswerOutput, error) {
	return api.TestDNSAnswer(ctx, &r53v2.TestDNSAnswerInput{
		HostedZoneId: awsv2.String(zoneID),
		RecordName:   awsv2.String(recordName),
		RecordType:   types.RRType(recordType),
	})
}
