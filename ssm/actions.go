// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"
	"errors"
	"fmt"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	ssmv2 "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// CreateDocument creates an SSM document from a local file. The
// document defines the actions SSM performs on managed instances.
func CreateDocument(ctx context.Context, api API, contentPath, name, versionName,
	documentType, documentFormat string) (*ssmv2.CreateDocumentOutput, error) {
	if contentPath == "" || name == "" {
		return nil, errors.New("to create a document you must specify the content path and name")
	}

	content, err := os.ReadFile(contentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create document %q: %w", name, err)
	}

	log.Debugf("creating SSM document %s from %s", name, contentPath)
	in := &ssmv2.CreateDocumentInput{
		Content: awsv2.String(string(content)),
		Name:    awsv2.String(name),
	}
	if versionName != "" {
		in.VersionName = awsv2.String(versionName)
	}
	if documentType != "" {
		in.DocumentType = types.DocumentType(documentType)
	}
	if documentFormat != "" {
		in.DocumentFormat = types.DocumentFormat(documentFormat)
	}
	out, err := api.CreateDocument(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create document %q: %w", name, err)
	}
	return out, nil
}

// SendCommandOptions carries the optional knobs of SendCommand. Zero
// values are omitted from the request.
type SendCommandOptions struct {
	DocumentVersion string
	Targets         []types.Target
	Parameters      map[string][]string
	TimeoutSeconds  int32
	MaxConcurrency  string
	MaxErrors       string
}

// SendCommand runs an SSM document on one or more managed instances.
func SendCommand(ctx context.Context, api API, documentName string,
	opts SendCommandOptions) (*ssmv2.SendCommandOutput, error) {
	if documentName == "" {
		return nil, errors.New("to run commands you must specify the document name")
	}

	in := &ssmv2.SendCommandInput{
		DocumentName: awsv2.String(documentName),
		Targets:      opts.Targets,
		Parameters:   opts.Parameters,
	}
	if opts.DocumentVersion != "" {
		in.DocumentVersion = awsv2.String(opts.DocumentVersion)
	}
	if opts.TimeoutSeconds > 0 {
		in.TimeoutSeconds = awsv2.Int32(opts.TimeoutSeconds)
	}
	if opts.MaxConcurrency != "" {
		in.MaxConcurrency = awsv2.String(opts.MaxConcurrency)
	}
	if opts.MaxErrors != "" {
		in.MaxErrors = awsv2.String(opts.MaxErrors)
	}

	log.Debugf("sending SSM command for document %s", documentName)
	out, err := api.SendCommand(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to send command for document %q: %w", documentName, err)
	}
	return out, nil
}

// DeleteDocument deletes an SSM document and, by default, all of its
// versions.
func DeleteDocument(ctx context.Context, api API, name, versionName string,
	force bool) (*ssmv2.DeleteDocumentOutput, error) {
	if name == "" {
		return nil, errors.New("to delete a document you must specify the name")
	}

	log.Debugf("deleting SSM document %s", name)
	in := &ssmv2.DeleteDocumentInput{
		Name:  awsv2.String(name),
		Force: force,
	}
	if versionName != "" {
		in.VersionName = awsv2.String(versionName)
	}
	out, err := api.DeleteDocument(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to delete document %q: %w", name, err)
	}
	return out, nil
}
