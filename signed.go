// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package chaosaws

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"

	"github.com/chaosaws/chaosaws/internal/log"
)

// Response is the raw outcome of a signed low-level call. The body is
// returned verbatim (JSON or XML depending on the service); interpretation
// is the caller's responsibility.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// SignedCall issues a single SigV4-signed HTTP request against
// https://<service>.<region>.amazonaws.com<path>. It exists for AWS APIs
// the SDK does not support yet. One request, one response: no retry, no
// pagination, no body decoding.
func SignedCall(ctx context.Context, cfg awsv2.Config, service, method, path string,
	query url.Values, body []byte) (*Response, error) {
	if cfg.Region == "" {
		return nil, ErrNoRegion
	}
	if path == "" {
		path = "/"
	}

	u := url.URL{
		Scheme:   "https",
		Host:     fmt.Sprintf("%s.%s.amazonaws.com", service, cfg.Region),
		Path:     path,
		RawQuery: query.Encode(),
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return nil, err
	}

	payloadHash := sha256.Sum256(body)
	signer := v4.NewSigner()
	if err := signer.SignHTTP(ctx, creds, req, hex.EncodeToString(payloadHash[:]),
		service, cfg.Region, time.Now().UTC()); err != nil {
		return nil, err
	}

	log.Debugf("signed call: %s %s", method, u.String())
	resp, err := httpClient(cfg).Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

func httpClient(cfg awsv2.Config) awsv2.HTTPClient {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	return http.DefaultClient
}
