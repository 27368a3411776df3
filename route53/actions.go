// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package route53

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	r53v2 "github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// AssociateVPCWithZone associates a VPC with a private hosted zone.
func AssociateVPCWithZone(ctx context.Context, api API, zoneID, vpcID, vpcRegion,
	comment string) (*r53v2.AssociateVPCWithHostedZoneOutput, error) {
	log.Debugf("associating VPC %s with hosted zone %s", vpcID, zoneID)
	in := &r53v2.AssociateVPCWithHostedZoneInput{
		HostedZoneId: awsv2.String(zoneID),
		VPC: &types.VPC{
			VPCId:     awsv2.String(vpcID),
			VPCRegion: types.VPCRegion(vpcRegion),
		},
	}
	if comment != "" {
		in.Comment = awsv2.String(comment)
	}
	return api.AssociateVPCWithHostedZone(ctx, in)
}

// DisassociateVPCFromZone removes the association between a VPC and a
// private hosted zone.
func DisassociateVPCFromZone(ctx context.Context, api API, zoneID, vpcID, vpcRegion,
	comment string) (*r53v2.DisassociateVPCFromHostedZoneOutput, error) {
	log.Debugf("disassociating VPC %s from hosted zone %s", vpcID, zoneID)
	in := &r53v2.DisassociateVPCFromHostedZoneInput{
		HostedZoneId: awsv2.String(zoneID),
		VPC: &types.VPC{
			VPCId:     awsv2.String(vpcID),
			VPCRegion: types.VPCRegion(vpcRegion),
		},
	}
	if comment != "" {
		in.Comment = awsv2.String(comment)
	}
	return api.DisassociateVPCFromHostedZone(ctx, in)
}
