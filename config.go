// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package chaosaws

import (
	"context"
	"errors"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/chaosaws/chaosaws/internal/log"
)

// DefaultSessionName is used for role assumption when the configuration
// does not name a session.
const DefaultSessionName = "ChaosToolkit"

// ErrNoRegion is returned when no region can be resolved from the
// configuration or the environment. There is deliberately no fallback
// default region; callers must be explicit.
var ErrNoRegion = errors.New(
	"no AWS region resolvable: set aws_region or the AWS_REGION/AWS_DEFAULT_REGION environment variable")

// NewConfig resolves an aws.Config for the given configuration and
// secrets, ready to construct any service client.
//
// Credential precedence: explicit secrets, then the named profile, then
// the SDK default chain (environment, shared credentials, IMDS). When an
// assume-role ARN is configured, the base credentials are exchanged for
// temporary ones scoped to that role. Region precedence: configuration
// value, then AWS_REGION, then AWS_DEFAULT_REGION; absence of all three
// fails with ErrNoRegion before any network call.
func NewConfig(ctx context.Context, conf *Configuration, secrets *Secrets) (awsv2.Config, error) {
	if conf == nil {
		conf = &Configuration{}
	}

	region := resolveRegion(conf)
	if region == "" {
		return awsv2.Config{}, ErrNoRegion
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	switch {
	case secrets.explicit():
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				secrets.AccessKeyID, secrets.SecretAccessKey, secrets.SessionToken)))
	case conf.ProfileName != "":
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(conf.ProfileName))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}

	if conf.AssumeRoleARN != "" {
		cfg.Credentials = assumeRole(cfg, conf)
	}

	log.Debugf("config resolved: region=%s profile=%s role=%s",
		region, conf.ProfileName, conf.AssumeRoleARN)
	return cfg, nil
}

// assumeRole wraps the config credentials in an STS assume-role provider
// scoped to the configured ARN. The exchange itself happens lazily on the
// first client call and any failure surfaces there untranslated.
func assumeRole(cfg awsv2.Config, conf *Configuration) awsv2.CredentialsProvider {
	sessionName := conf.AssumeRoleSessionName
	if sessionName == "" {
		sessionName = DefaultSessionName
	}

	provider := stscreds.NewAssumeRoleProvider(
		sts.NewFromConfig(cfg), conf.AssumeRoleARN,
		func(o *stscreds.AssumeRoleOptions) {
			o.RoleSessionName = sessionName
		})
	return awsv2.NewCredentialsCache(provider)
}

func resolveRegion(conf *Configuration) string {
	if conf.Region != "" {
		return conf.Region
	}
	if r := os.Getenv("AWS_REGION"); r != "" {
		return r
	}
	return os.Getenv("AWS_DEFAULT_REGION")
}
