// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/pdf-search/logger"
)

type Config struct {
	// MaxWorkers bounds the file worker pool. Zero derives the pool size
	// from the available hardware parallelism, clamped to [2, 32].
	MaxWorkers int `validate:"min=0,max=32"`
	// ContextChars is the trailing snippet context length.
	ContextChars int `validate:"min=0,max=1000"`
	DebugOn      bool
	Logger       logger.LogFunc
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxWorkers:   0,
		ContextChars: DefaultContextChars,
		DebugOn:      false,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}
