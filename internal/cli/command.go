/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package cli implements the fold command-line tool.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-fold/commonerrors"
	"github.com/ARM-software/golang-fold/config"
)

const (
	flagOperator   = "operator"
	flagSeparator  = "separator"
	flagSeed       = "seed"
	flagInput      = "input"
	flagLogBackend = "log-backend"
)

const rootLongDescription = `Fold reduces a list of values, one per line, into a single result.

Unless a seed is given, the first value is used as the initial accumulator and
folding an empty input fails. Values are processed in the order they appear.

Every flag can also be set through a FOLD_ prefixed environment variable
(e.g. FOLD_OPERATOR, FOLD_LOG_BACKEND) or a .env file.`

// NewRootCommand returns the fold command reading files from fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	session := viper.New()
	defaults := DefaultConfiguration()
	cmd := &cobra.Command{
		Use:          "fold",
		Short:        "Fold a list of values into a single one",
		Long:         rootLongDescription,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := &Configuration{}
			err := config.LoadFromViper(session, EnvVarPrefix, cfg, defaults)
			if err != nil {
				return err
			}
			return run(fs, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP(flagOperator, "o", defaults.Operator, fmt.Sprintf("operator to fold values with: one of %v", strings.Join(Operators(), ", ")))
	flags.StringP(flagSeparator, "s", defaults.Separator, "separator used by the join operator")
	flags.String(flagSeed, defaults.Seed, "initial accumulator; if empty, the first value is used")
	flags.StringP(flagInput, "i", defaults.Input, "file to read values from, or - for standard input")
	flags.String(flagLogBackend, defaults.LogBackend, "logger to use: one of none, std, zap, logrus")
	for _, name := range []string{flagOperator, flagSeparator, flagSeed, flagInput, flagLogBackend} {
		envVar := strings.ReplaceAll(name, "-", config.EnvVarSeparator)
		cobra.CheckErr(config.BindFlagToEnv(session, EnvVarPrefix, envVar, flags.Lookup(name)))
	}
	return cmd
}

func run(fs afero.Fs, stdin io.Reader, stdout, stderr io.Writer, cfg *Configuration) (err error) {
	loggers, err := newLoggers(cfg.LogBackend, stderr)
	if err != nil {
		return
	}
	defer func() { _ = loggers.Close() }()
	_ = loggers.SetLogSource(cfg.Input)

	op, err := getOperation(cfg.Operator)
	if err != nil {
		loggers.LogError(err)
		return
	}
	elements, err := readElements(fs, stdin, cfg.Input)
	if err != nil {
		loggers.LogError(err)
		return
	}
	loggers.Log("folding", elements.Len(), "values with operator", cfg.Operator, "seeded:", cfg.HasSeed())
	result, err := op(elements, cfg)
	if err != nil {
		if commonerrors.Any(err, commonerrors.ErrEmpty) {
			err = commonerrors.WrapError(commonerrors.ErrEmpty, err, "provide at least one value or a seed")
		}
		loggers.LogError(err)
		return
	}
	for i := range result {
		_, err = fmt.Fprintln(stdout, result[i])
		if err != nil {
			return
		}
	}
	return
}

// Execute runs the fold command on the OS file system.
func Execute() {
	err := NewRootCommand(afero.NewOsFs()).Execute()
	if err != nil {
		os.Exit(1)
	}
}
