// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command apix executes one call against a JSON API and prints the
// decoded response.
//
//	apix get users 42 --base-url https://api.example.com/ -H Accept=application/json
package main

import (
	"errors"
	"os"
	"strings"

	"github.com/gogama/apix"
	"github.com/gogama/apix/apierr"
	"github.com/gogama/apix/internal/config"
	"github.com/gogama/apix/internal/logger"
	"github.com/gogama/apix/request"
	"github.com/gogama/apix/timeout"
	"github.com/gogama/apix/zaplog"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "apix",
	Short:         "Execute a call against a JSON API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	config.InitFlags(pf)
	pf.StringArrayP("header", "H", nil, "Request header as name=value (repeatable)")
	pf.StringArrayP("query", "q", nil, "Query parameter as key=value (repeatable)")
	pf.StringArrayP("data", "d", nil, "Form body field as key=value (repeatable)")

	for _, m := range request.Methods() {
		rootCmd.AddCommand(newMethodCommand(m))
	}
}

func newMethodCommand(m request.Method) *cobra.Command {
	return &cobra.Command{
		Use:   strings.ToLower(m.String()) + " [segment]...",
		Short: "Execute a " + m.String() + " call",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, m, args)
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var ae *apierr.Error
		if errors.As(err, &ae) {
			pterm.Error.Printfln("%d: %s", ae.StatusCode, ae.Detail)
		} else {
			pterm.Error.Println(err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, m request.Method, segments []string) error {
	fs := cmd.Flags()
	path, _ := fs.GetString("config")
	cfg, err := config.Load(path, fs)
	if err != nil {
		return err
	}

	z, err := logger.New(cfg.Logging)
	if err != nil {
		return err
	}
	z = z.With(zap.String("invocation_id", uuid.NewString()))
	defer func() {
		_ = z.Sync()
	}()

	headers, _ := fs.GetStringArray("header")
	query, _ := fs.GetStringArray("query")
	data, _ := fs.GetStringArray("data")
	r, err := buildRoute(m, cfg.Endpoint, segments, headers, query, data)
	if err != nil {
		return err
	}

	x := &apix.Executor{
		Logger:        zaplog.New(z),
		TimeoutPolicy: timeout.Fixed(cfg.Endpoint.Timeout),
		CachePolicy:   cfg.Endpoint.CachePolicyValue(),
	}
	if cfg.Endpoint.HTTP2 {
		if x.Session, err = apix.NewHTTP2Session(); err != nil {
			return err
		}
	}
	defer x.CloseIdleConnections()

	v, err := apix.Execute[any](cmd.Context(), x, r)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), v, cfg.Output)
}
