// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Command pdfsearch searches PDF files under a folder for a text pattern
// and prints one line per hit: file, page and context snippet.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	pdfsearch "github.com/sassoftware/pdf-search"
	"github.com/sassoftware/pdf-search/logger"
	"github.com/sassoftware/pdf-search/report"
	"github.com/sassoftware/pdf-search/settings"
	"github.com/sassoftware/pdf-search/tracer"
)

func main() {
	var (
		folder       = flag.String("dir", "", "folder to search for PDF files")
		file         = flag.String("file", "", "single PDF file to search")
		text         = flag.String("text", "", "search text or regular expression")
		recursive    = flag.Bool("recursive", true, "descend into subfolders")
		caseFlag     = flag.Bool("case", false, "case-sensitive matching")
		regexFlag    = flag.Bool("regex", false, "treat the search text as a regular expression")
		contextChars = flag.Int("context", pdfsearch.DefaultContextChars, "snippet context length after the match")
		workers      = flag.Int("workers", 0, "worker pool size (0 = derive from CPU count)")
		settingsPath = flag.String("settings", "", "settings file to load; missing flags fall back to its values")
		saveSettings = flag.Bool("save-settings", false, "write the effective settings back to the settings file")
		outPath      = flag.String("out", "", "export results to this file (.csv or .json)")
		links        = flag.Bool("links", false, "print a file:...#page=N link for each hit")
		verbose      = flag.Bool("v", false, "log engine debug output to stderr")
	)
	flag.Parse()

	cfg := pdfsearch.NewDefaultConfig()
	cfg.MaxWorkers = *workers
	cfg.ContextChars = *contextChars
	cfg.DebugOn = *verbose
	if *verbose {
		cfg.Logger = func(level logger.LogLevel, msg string, keyvals ...interface{}) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", level, msg)
		}
	}

	s := settings.Default()
	if *settingsPath != "" {
		s = settings.Load(*settingsPath)
	}
	if *folder != "" {
		s.TargetFolder = *folder
	}
	if *file != "" {
		s.TargetFile = *file
	}
	if *text != "" {
		s.SearchText = *text
	}
	s.Recursive = *recursive
	s.CaseSensitive = *caseFlag
	s.UseRegex = *regexFlag

	if s.SearchText == "" {
		fmt.Fprintln(os.Stderr, "pdfsearch: no search text given (use -text)")
		os.Exit(2)
	}

	files, err := pdfsearch.CollectFiles(s.TargetFolder, s.TargetFile, s.Recursive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdfsearch: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "pdfsearch: no PDF files found (use -dir or -file)")
		os.Exit(2)
	}

	if *settingsPath != "" && *saveSettings {
		if err := settings.Save(*settingsPath, s); err != nil {
			fmt.Fprintf(os.Stderr, "pdfsearch: saving settings: %v\n", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	searcher := pdfsearch.NewSearcher(cfg)
	startedAt := time.Now()
	runErr := searcher.Run(ctx, pdfsearch.Request{
		Files: files,
		Pattern: pdfsearch.PatternSpec{
			Text:          s.SearchText,
			CaseSensitive: s.CaseSensitive,
			UseRegex:      s.UseRegex,
		},
		Context: *contextChars,
		Progress: func(done, total int, msg string) {
			fmt.Fprintf(os.Stderr, "\r%-40s", msg)
		},
		Cancelled: func() bool { return ctx.Err() != nil },
	})
	fmt.Fprintln(os.Stderr)

	state := searcher.State()
	hits, errs := searcher.Results()

	if runErr != nil {
		if _, ok := runErr.(*pdfsearch.PatternError); ok {
			fmt.Fprintf(os.Stderr, "pdfsearch: %v\n", runErr)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "pdfsearch: %v (partial results below)\n", runErr)
		if *verbose {
			tracer.Flush()
		}
	}

	for _, h := range hits {
		fmt.Printf("%s:%d: %s\n", filepath.Clean(h.File), h.Page, h.Snippet)
		if *links {
			if link, err := pdfsearch.PageLink(h.File, h.Page); err == nil {
				fmt.Printf("    %s\n", link)
			}
		}
	}
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "pdfsearch: %s: %s\n", e.File, e.Message)
	}

	if *outPath != "" {
		log := &report.RunLog{
			SearchText: s.SearchText,
			StartedAt:  startedAt,
			Hits:       hits,
			Errors:     errs,
		}
		var exp report.Exporter
		if strings.HasSuffix(strings.ToLower(*outPath), ".json") {
			exp = &report.JSONExporter{}
		} else {
			exp = &report.CSVExporter{}
		}
		if err := exp.Export(log, *outPath); err != nil {
			fmt.Fprintf(os.Stderr, "pdfsearch: exporting results: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Fprintf(os.Stderr, "%d hits, %d errors in %d files (%s, %s)\n",
		len(hits), len(errs), len(files), state, time.Since(startedAt).Round(time.Millisecond))
	if len(errs) > 0 {
		os.Exit(1)
	}
}
