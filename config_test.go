// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name: "valid config",
			cfg: &Config{
				MaxWorkers:   8,
				ContextChars: 30,
			},
			shouldErr: false,
		},
		{
			name: "auto worker count",
			cfg: &Config{
				MaxWorkers:   0,
				ContextChars: 30,
			},
			shouldErr: false,
		},
		{
			name: "invalid MaxWorkers (too high)",
			cfg: &Config{
				MaxWorkers:   64,
				ContextChars: 30,
			},
			shouldErr: true,
		},
		{
			name: "invalid MaxWorkers (negative)",
			cfg: &Config{
				MaxWorkers:   -1,
				ContextChars: 30,
			},
			shouldErr: true,
		},
		{
			name: "invalid ContextChars (negative)",
			cfg: &Config{
				MaxWorkers:   2,
				ContextChars: -5,
			},
			shouldErr: true,
		},
		{
			name: "invalid ContextChars (too high)",
			cfg: &Config{
				MaxWorkers:   2,
				ContextChars: 5000,
			},
			shouldErr: true,
		},
		{
			name:      "default config is valid",
			cfg:       NewDefaultConfig(),
			shouldErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.shouldErr {
				assert.Error(t, err, "expected validation error")
			} else {
				assert.NoError(t, err, "expected validation to pass")
			}
		})
	}
}

func TestNewSearcher_PanicsOnInvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MaxWorkers = -3
	assert.Panics(t, func() { NewSearcher(cfg) })
}
