// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package chaosaws

// Configuration keys recognized by ConfigurationFromMap. They match the
// keys a hosting experiment runner passes in its configuration block.
const (
	KeyRegion                = "aws_region"
	KeyProfileName           = "aws_profile_name"
	KeyAssumeRoleARN         = "aws_assume_role_arn"
	KeyAssumeRoleSessionName = "aws_assume_role_session_name"
)

// Secrets keys recognized by SecretsFromMap.
const (
	KeyAccessKeyID     = "aws_access_key_id"
	KeySecretAccessKey = "aws_secret_access_key"
	KeySessionToken    = "aws_session_token"
)

// Configuration carries the per-invocation settings used to resolve an AWS
// session. All fields are optional; zero values fall back to the SDK
// default chain, except the region which must resolve somewhere (see
// NewConfig).
type Configuration struct {
	Region                string
	ProfileName           string
	AssumeRoleARN         string
	AssumeRoleSessionName string
}

// Secrets holds explicit credentials supplied per invocation. They are
// never persisted. When AccessKeyID and SecretAccessKey are both set they
// take precedence over any profile or default-chain credentials.
type Secrets struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// ConfigurationFromMap builds a Configuration from the loosely-typed
// mapping a hosting runner supplies. Unknown keys are ignored.
func ConfigurationFromMap(m map[string]any) *Configuration {
	return &Configuration{
		Region:                stringValue(m, KeyRegion),
		ProfileName:           stringValue(m, KeyProfileName),
		AssumeRoleARN:         stringValue(m, KeyAssumeRoleARN),
		AssumeRoleSessionName: stringValue(m, KeyAssumeRoleSessionName),
	}
}

// SecretsFromMap builds Secrets from the loosely-typed mapping a hosting
// runner supplies. Unknown keys are ignored.
func SecretsFromMap(m map[string]any) *Secrets {
	return &Secrets{
		AccessKeyID:     stringValue(m, KeyAccessKeyID),
		SecretAccessKey: stringValue(m, KeySecretAccessKey),
		SessionToken:    stringValue(m, KeySessionToken),
	}
}

func stringValue(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func (s *Secrets) explicit() bool {
	return s != nil && s.AccessKeyID != "" && s.SecretAccessKey != ""
}
