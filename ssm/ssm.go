// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package ssm exposes chaos actions for AWS Systems Manager documents
// and commands.
package ssm

import (
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
)

// API lists the SSM operations this package invokes.
type API interface {
	CreateDocument(ctx context.Context, params *ssmv2.CreateDocumentInput,
		optFns ...func(*ssmv2.Options)) (*ssmv2.CreateDocumentOutput, error)
	SendCommand(ctx context.Context, params *ssmv2.SendCommandInput,
		optFns ...func(*ssmv2.Options)) (*ssmv2.SendCommandOutput, error)
	DeleteDocument(ctx context.Context, params *ssmv2.DeleteDocumentInput,
		optFns ...func(*ssmv2.Options)) (*ssmv2.DeleteDocumentOutput, error)
	ListCommandInvocations(ctx context.Context, params *ssmv2.ListCommandInvocationsInput,
		optFns ...func(*ssmv2.Options)) (*ssmv2.ListCommandInvocationsOutput, error)
}

// New constructs an SSM client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*ssmv2.Options)) *ssmv2.Client {
	return ssmv2.NewFromConfig(cfg, optFns...)
}
