// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/gogama/apix/internal/config"
	"github.com/gogama/apix/request"
	"gopkg.in/yaml.v3"
)

// parsePairs parses "key=value" arguments. The value may contain "=".
func parsePairs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", p)
		}
		m[k] = v
	}

	return m, nil
}

func toValues(m map[string]string) request.Values {
	if m == nil {
		return nil
	}

	vs := make(request.Values, len(m))
	for k, v := range m {
		vs[k] = request.String(v)
	}

	return vs
}

// buildRoute builds the route for one invocation. Headers given as
// flags replace configured headers of the same name, compared without
// regard to case.
func buildRoute(m request.Method, e config.EndpointConfig, segments, headers, query, data []string) (*request.Route, error) {
	h, err := parsePairs(headers)
	if err != nil {
		return nil, err
	}
	q, err := parsePairs(query)
	if err != nil {
		return nil, err
	}
	d, err := parsePairs(data)
	if err != nil {
		return nil, err
	}

	merged := mergeHeaders(e.Headers, h)

	r := request.NewRoute(m, segments...).WithBaseURL(e.BaseURL)
	if merged != nil {
		r = r.WithHeaders(merged)
	}

	return r.WithQuery(toValues(q)).WithBody(toValues(d)), nil
}

func mergeHeaders(base, override map[string]string) map[string]string {
	if base == nil && override == nil {
		return nil
	}

	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range override {
		for bk := range merged {
			if strings.EqualFold(bk, k) {
				delete(merged, bk)
			}
		}
		merged[k] = v
	}

	return merged
}

func render(w io.Writer, v interface{}, format string) error {
	if format == config.OutputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
