// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package s3

import "context"

// BucketExists reports whether the given S3 bucket exists.
func BucketExists(ctx context.Context, api API, bucket string) (bool, error) {
	return bucketExists(ctx, api, bucket)
}

// ObjectExists reports whether an object exists in an S3 bucket at the
// given version. The bucket itself must exist.
func ObjectExists(ctx context.Context, api API, bucket, key, versionID string) (bool, error) {
	exists, err := bucketExists(ctx, api, bucket)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, errBucketMissing(bucket)
	}
	return objectExists(ctx, api, bucket, key, versionID), nil
}
