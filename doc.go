// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package chaosaws provides the shared plumbing for the chaosaws activity
// catalog: typed experiment configuration and secrets, the credential and
// session resolver used to build aws-sdk-go-v2 clients, and a low-level
// signed request helper for AWS APIs the SDK does not cover yet.
//
// The per-service action and probe catalogs live in the sibling packages
// (ec2, asg, ecs, ...). Each activity is an independent, stateless function
// that issues one or a few SDK calls and returns the raw response.
package chaosaws
