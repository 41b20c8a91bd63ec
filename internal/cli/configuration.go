/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cli

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	EnvVarPrefix = "fold"
	StdinInput   = "-"

	OperatorSum      = "sum"
	OperatorProduct  = "product"
	OperatorMin      = "min"
	OperatorMax      = "max"
	OperatorJoin     = "join"
	OperatorCount    = "count"
	OperatorDistinct = "distinct"

	LogBackendNone   = "none"
	LogBackendStd    = "std"
	LogBackendZap    = "zap"
	LogBackendLogrus = "logrus"
)

// Configuration defines how the fold command processes its input.
type Configuration struct {
	Operator   string `mapstructure:"operator"`
	Separator  string `mapstructure:"separator"`
	Seed       string `mapstructure:"seed"`
	Input      string `mapstructure:"input"`
	LogBackend string `mapstructure:"log_backend"`
}

// DefaultConfiguration returns the configuration used when nothing is specified.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Operator:   OperatorSum,
		Separator:  ",",
		Input:      StdinInput,
		LogBackend: LogBackendNone,
	}
}

// HasSeed states whether an initial accumulator was provided. A blank seed means the input is folded from its first element.
func (cfg *Configuration) HasSeed() bool {
	return cfg.SeedValue() != ""
}

// SeedValue returns the seed without surrounding whitespace, as input elements are read.
func (cfg *Configuration) SeedValue() string {
	return strings.TrimSpace(cfg.Seed)
}

func (cfg *Configuration) Validate() error {
	return validation.ValidateStruct(cfg,
		validation.Field(&cfg.Operator, validation.Required, validation.In(toAny(Operators())...)),
		validation.Field(&cfg.Input, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("validation_input_blank", "cannot be blank")
			}
			return nil
		})),
		validation.Field(&cfg.LogBackend, validation.In(LogBackendNone, LogBackendStd, LogBackendZap, LogBackendLogrus)),
	)
}
