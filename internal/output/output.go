// Copyright (c) 2026 The chaosaws authors.
// SPDX-License-Identifier: Apache-2.0

// Package output renders command results as JSON or YAML, optionally
// narrowed by a gjson query.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Spit writes v to w in the requested format. An empty format defaults
// to JSON. A non-empty query is applied as a gjson path against the
// JSON form of v before rendering, so callers can carve out a subset
// of a large response.
func Spit(w io.Writer, v any, format, query string) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if query != "" {
		result := gjson.GetBytes(raw, query)
		if !result.Exists() {
			return fmt.Errorf("no match for query %q", query)
		}
		raw = []byte(result.Raw)
	}

	switch format {
	case FormatJSON, "":
		var buf any
		if err := json.Unmarshal(raw, &buf); err != nil {
			return err
		}
		pretty, err := json.MarshalIndent(buf, "", "  ")
		if err != nil {
			return err
		}
		pretty = append(pretty, '\n')
		_, err = w.Write(pretty)
		return err
	case FormatYAML:
		var buf any
		if err := json.Unmarshal(raw, &buf); err != nil {
			return err
		}
		return yaml.NewEncoder(w).Encode(buf)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
