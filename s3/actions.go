// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/chaosaws/chaosaws/internal/log"
)

// DeleteObject deletes an object in an S3 bucket. The bucket and the
// object (at the given version when provided) must exist.
func DeleteObject(ctx context.Context, api API, bucket, key, versionID string) error {
	exists, err := bucketExists(ctx, api, bucket)
	if err != nil {
		return err
	}
	if !exists {
		return errBucketMissing(bucket)
	}

	if !objectExists(ctx, api, bucket, key, versionID) {
		if versionID != "" {
			return fmt.Errorf("object %q at version %s does not exist",
				"s3://"+bucket+"/"+key, versionID)
		}
		return fmt.Errorf("object %q does not exist", "s3://"+bucket+"/"+key)
	}

	log.Debugf("deleting object s3://%s/%s", bucket, key)
	in := &s3v2.DeleteObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	}
	if versionID != "" {
		in.VersionId = awsv2.String(versionID)
	}
	_, err = api.DeleteObject(ctx, in)
	return err
}

// ToggleVersioning flips or forces the versioning status of an S3
// bucket. With an empty status the current one is read and inverted;
// forcing the status the bucket already has is an error.
func ToggleVersioning(ctx context.Context, api API, bucket string,
	status types.BucketVersioningStatus, mfa, mfaDelete, owner string) error {
	exists, err := bucketExists(ctx, api, bucket)
	if err != nil {
		return err
	}
	if !exists {
		return errBucketMissing(bucket)
	}

	current, err := bucketVersioning(ctx, api, bucket)
	if err != nil {
		return err
	}
	if current == status {
		return fmt.Errorf("bucket %s versioning is already %s", bucket, status)
	}
	if status == "" {
		status = types.BucketVersioningStatusEnabled
		if current == types.BucketVersioningStatusEnabled {
			status = types.BucketVersioningStatusSuspended
		}
	}

	log.Debugf("setting versioning of bucket %s to %s", bucket, status)
	in := &s3v2.PutBucketVersioningInput{
		Bucket: awsv2.String(bucket),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: status,
		},
	}
	if mfaDelete != "" {
		in.VersioningConfiguration.MFADelete = types.MFADelete(mfaDelete)
	}
	if mfa != "" {
		in.MFA = awsv2.String(mfa)
	}
	if owner != "" {
		in.ExpectedBucketOwner = awsv2.String(owner)
	}
	_, err = api.PutBucketVersioning(ctx, in)
	return err
}
