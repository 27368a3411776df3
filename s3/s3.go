// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package s3 exposes chaos actions and probes for Amazon S3 buckets and
// objects.
package s3

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// API lists the S3 operations this package invokes.
type API interface {
	ListBuckets(ctx context.Context, params *s3v2.ListBucketsInput,
		optFns ...func(*s3v2.Options)) (*s3v2.ListBucketsOutput, error)
	GetObject(ctx context.Context, params *s3v2.GetObjectInput,
		optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3v2.DeleteObjectInput,
		optFns ...func(*s3v2.Options)) (*s3v2.DeleteObjectOutput, error)
	GetBucketVersioning(ctx context.Context, params *s3v2.GetBucketVersioningInput,
		optFns ...func(*s3v2.Options)) (*s3v2.GetBucketVersioningOutput, error)
	PutBucketVersioning(ctx context.Context, params *s3v2.PutBucketVersioningInput,
		optFns ...func(*s3v2.Options)) (*s3v2.PutBucketVersioningOutput, error)
}

// New constructs an S3 client from the provided config.
func New(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	return s3v2.NewFromConfig(cfg, optFns...)
}

func bucketExists(ctx context.Context, api API, bucket string) (bool, error) {
	out, err := api.ListBuckets(ctx, &s3v2.ListBucketsInput{})
	if err != nil {
		return false, err
	}
	for _, b := range out.Buckets {
		if awsv2.ToString(b.Name) == bucket {
			return true, nil
		}
	}
	return false, nil
}

func objectExists(ctx context.Context, api API, bucket, key, versionID string) bool {
	in := &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	}
	if versionID != "" {
		in.VersionId = awsv2.String(versionID)
	}
	out, err := api.GetObject(ctx, in)
	if err != nil {
		return false
	}
	if out.Body != nil {
		out.Body.Close()
	}
	return true
}

// bucketVersioning reports the versioning status of a bucket. Buckets
// that never had versioning configured report it as suspended.
func bucketVersioning(ctx context.Context, api API, bucket string) (types.BucketVersioningStatus, error) {
	out, err := api.GetBucketVersioning(ctx, &s3v2.GetBucketVersioningInput{
		Bucket: awsv2.String(bucket),
	})
	if err != nil {
		return "", err
	}
	if out.Status == "" {
		return types.BucketVersioningStatusSuspended, nil
	}
	return out.Status, nil
}

func errBucketMissing(bucket string) error {
	return fmt.Errorf("bucket %q does not exist", bucket)
}
