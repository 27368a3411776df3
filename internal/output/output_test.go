// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSpitJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Spit(&buf, widget{Name: "a", Count: 2}, "", "")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "a", "count": 2}`, buf.String())
}

func TestSpitYAML(t *testing.T) {
	var buf bytes.Buffer
	err := Spit(&buf, widget{Name: "a", Count: 2}, FormatYAML, "")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "name: a")
	assert.Contains(t, buf.String(), "count: 2")
}

func TestSpitQuery(t *testing.T) {
	var buf bytes.Buffer
	data := []widget{{Name: "a"}, {Name: "b"}}
	err := Spit(&buf, data, FormatJSON, "#.name")
	require.NoError(t, err)
	assert.JSONEq(t, `["a", "b"]`, buf.String())
}

func TestSpitQueryNoMatch(t *testing.T) {
	var buf bytes.Buffer
	err := Spit(&buf, widget{}, "", "nope.nothing")
	require.EqualError(t, err, `no match for query "nope.nothing"`)
}

func TestSpitUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Spit(&buf, widget{}, "toml", "")
	require.EqualError(t, err, `unknown output format "toml"`)
}
