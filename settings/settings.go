// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package settings persists a user's search setup as a plain key-value
// text file, one "key=value" pair per line. Loading is forgiving: a
// missing file, an unreadable file or unknown lines yield defaults rather
// than an error, so a corrupt settings file never blocks a search.
package settings

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings holds the persisted search setup.
type Settings struct {
	TargetFolder  string
	TargetFile    string
	SearchText    string
	Recursive     bool
	CaseSensitive bool
	UseRegex      bool
}

// Default returns the settings used when nothing has been saved yet.
func Default() Settings {
	return Settings{Recursive: true}
}

// Load reads settings from path. Unknown keys are ignored and malformed
// lines are skipped; values that fail to parse keep their defaults.
func Load(path string) Settings {
	s := Default()

	f, err := os.Open(path)
	if err != nil {
		return s
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "target_folder":
			s.TargetFolder = value
		case "target_file":
			s.TargetFile = value
		case "search_text":
			s.SearchText = value
		case "recursive":
			if b, err := strconv.ParseBool(value); err == nil {
				s.Recursive = b
			}
		case "case_sensitive":
			if b, err := strconv.ParseBool(value); err == nil {
				s.CaseSensitive = b
			}
		case "use_regex":
			if b, err := strconv.ParseBool(value); err == nil {
				s.UseRegex = b
			}
		}
	}
	return s
}

// Save writes settings to path, replacing any existing file. Keys are
// written in a fixed order so saved files diff cleanly.
func Save(path string, s Settings) error {
	var b strings.Builder
	fmt.Fprintf(&b, "target_folder=%s\n", s.TargetFolder)
	fmt.Fprintf(&b, "target_file=%s\n", s.TargetFile)
	fmt.Fprintf(&b, "search_text=%s\n", s.SearchText)
	fmt.Fprintf(&b, "recursive=%t\n", s.Recursive)
	fmt.Fprintf(&b, "case_sensitive=%t\n", s.CaseSensitive)
	fmt.Fprintf(&b, "use_regex=%t\n", s.UseRegex)
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
