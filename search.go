// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package pdfsearch locates occurrences of a text pattern across PDF
// documents and reports, for each hit, the source file, page number and a
// bounded context snippet.
//
// The package carries its own minimal reader of the PDF object model
// instead of depending on a general PDF library: a scanner for indirect
// objects, a resolver for page dictionaries and their content streams, a
// DEFLATE decompressor with a raw-stream fallback, and a decoder for
// literal strings inside BT..ET text regions. Only text expressed through
// simple text-showing operators in literal strings is recovered; object
// streams, cross-reference streams, encryption and font-aware glyph
// mapping are out of scope.
//
// Searcher drives extraction and matching over many files under a bounded
// worker pool with cooperative cancellation, per-file error aggregation
// and progress reporting.
package pdfsearch

import (
	"context"
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/sassoftware/pdf-search/logger"
	"golang.org/x/sync/semaphore"
)

// RunState is the coordinator's lifecycle state.
type RunState string

const (
	StateIdle      RunState = "idle"
	StateRunning   RunState = "running"
	StateCompleted RunState = "completed"
	StateCancelled RunState = "cancelled"
	StateFatal     RunState = "fatal"
)

// SearchHit is one pattern occurrence: source file, 1-based page number
// and a bounded context snippet.
type SearchHit struct {
	File    string
	Page    int
	Snippet string
}

// SearchError is one file-level failure. Detail carries diagnostic context
// such as a stack trace; it may be empty.
type SearchError struct {
	File    string
	Message string
	Detail  string
}

// ProgressFunc receives (done, total, message) after each file completes.
type ProgressFunc func(done, total int, msg string)

// CancelFunc is polled cooperatively; once it returns true the run stops
// picking up new files and in-flight files stop at the next page boundary.
type CancelFunc func() bool

// Request describes one search run.
type Request struct {
	Files   []string
	Pattern PatternSpec
	// Context overrides Config.ContextChars when positive.
	Context   int
	Progress  ProgressFunc
	Cancelled CancelFunc
}

// Searcher coordinates extraction and matching over a file set. A Searcher
// runs one search at a time; hits and errors accumulate during a run and
// are replaced wholesale by the next run.
type Searcher struct {
	cfg  *Config
	slot *semaphore.Weighted

	mu    sync.Mutex
	state RunState
	hits  []SearchHit
	errs  []SearchError
}

// NewSearcher validates the config and creates a new Searcher.
func NewSearcher(cfg *Config) *Searcher {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	logger.Debug(fmt.Sprintf("Searcher initialized: max_workers=%d context_chars=%d",
		cfg.MaxWorkers, cfg.ContextChars), true)

	return &Searcher{
		cfg:   cfg,
		slot:  semaphore.NewWeighted(1),
		state: StateIdle,
	}
}

// State returns the coordinator's current state.
func (s *Searcher) State() RunState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Results returns the hits and errors aggregated by the last run and
// returns the coordinator to the idle state. Within one file, hits are
// ordered by page number then by match offset; across files the order
// follows task completion and is unspecified.
func (s *Searcher) Results() ([]SearchHit, []SearchError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	hits := make([]SearchHit, len(s.hits))
	copy(hits, s.hits)
	errs := make([]SearchError, len(s.errs))
	copy(errs, s.errs)
	s.state = StateIdle
	return hits, errs
}

type fileResult struct {
	hits []SearchHit
	err  *SearchError
}

// Run executes one search. The pattern is compiled before any file work
// starts; a PatternError leaves the coordinator idle with its previous
// results intact. A failure in the pool orchestration itself surfaces as a
// RunFatalError while partial results are preserved. Per-file failures
// never surface here; they are collected as SearchError records.
func (s *Searcher) Run(ctx context.Context, req Request) error {
	if err := s.slot.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire run slot: %w", err)
	}
	defer s.slot.Release(1)

	matcher, err := Compile(req.Pattern)
	if err != nil {
		logger.Error(fmt.Sprintf("pattern compile failed: %v", err))
		return err
	}

	contextChars := s.cfg.ContextChars
	if req.Context > 0 {
		contextChars = req.Context
	}

	s.mu.Lock()
	s.state = StateRunning
	s.hits = nil
	s.errs = nil
	s.mu.Unlock()

	logger.Debug(fmt.Sprintf("Starting search run: files=%d regex=%v case=%v",
		len(req.Files), req.Pattern.UseRegex, req.Pattern.CaseSensitive), true)

	var cancelled atomic.Bool
	isCancelled := func() bool {
		if cancelled.Load() {
			return true
		}
		if ctx.Err() != nil || (req.Cancelled != nil && req.Cancelled()) {
			cancelled.Store(true)
			return true
		}
		return false
	}

	err = s.runPool(req, matcher, contextChars, isCancelled)

	s.mu.Lock()
	switch {
	case err != nil:
		s.state = StateFatal
	case cancelled.Load():
		s.state = StateCancelled
	default:
		s.state = StateCompleted
	}
	logger.Debug(fmt.Sprintf("Search run finished: state=%s hits=%d errors=%d",
		s.state, len(s.hits), len(s.errs)), true)
	s.mu.Unlock()

	return err
}

// runPool dispatches one task per file into a bounded worker pool and
// collects completions in arbitrary order. A panic out of the pool
// management (not out of a file task) is converted into a RunFatalError.
func (s *Searcher) runPool(req Request, matcher *Matcher, contextChars int, isCancelled func() bool) (fatal error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("pool orchestration panic: %v", r))
			fatal = &RunFatalError{Cause: r}
		}
	}()

	total := len(req.Files)
	progress := req.Progress
	if progress == nil {
		progress = func(int, int, string) {}
	}
	progress(0, total, "search started")

	if total == 0 {
		return nil
	}

	numWorkers := s.adjustWorkerCount(total)
	jobs, results := make(chan string, total), make(chan fileResult, total)

	var wg sync.WaitGroup
	s.startWorkers(jobs, results, numWorkers, &wg, matcher, contextChars, isCancelled)

	for _, path := range req.Files {
		if isCancelled() {
			logger.Debug("cancellation observed, no further files dispatched", true)
			break
		}
		jobs <- path
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	// Serialized append: this loop is the only writer of the run's
	// hit/error collections and the progress counter. It also polls the
	// cancellation signal so a cancel requested from a progress callback
	// is observed even when every file is already in flight.
	done := 0
	for res := range results {
		isCancelled()
		s.mu.Lock()
		s.hits = append(s.hits, res.hits...)
		if res.err != nil {
			s.errs = append(s.errs, *res.err)
		}
		s.mu.Unlock()
		done++
		progress(done, total, fmt.Sprintf("processed %d/%d files", done, total))
	}
	return nil
}

// adjustWorkerCount derives the pool size from the configured maximum or,
// when unset, from the hardware parallelism, clamped to [2, 32]. The pool
// never exceeds the number of files.
func (s *Searcher) adjustWorkerCount(totalFiles int) int {
	n := s.cfg.MaxWorkers
	if n < 1 {
		n = runtime.NumCPU() * 2
	}
	if n < 2 {
		n = 2
	}
	if n > 32 {
		n = 32
	}
	if n > totalFiles {
		n = totalFiles
	}
	if n < 1 {
		n = 1
	}
	logger.Debug(fmt.Sprintf("Adjusted worker count: workers=%d", n), true)
	return n
}

func (s *Searcher) startWorkers(jobs <-chan string, results chan<- fileResult, numWorkers int, wg *sync.WaitGroup, matcher *Matcher, contextChars int, isCancelled func() bool) {
	logger.Debug(fmt.Sprintf("Spawning workers: num_workers=%d", numWorkers), true)
	for w := 1; w <= numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for path := range jobs {
				results <- s.searchFile(path, matcher, contextChars, isCancelled)
			}
			logger.Debug(fmt.Sprintf("Worker finished: id=%d", id))
		}(w)
	}
}

// searchFile extracts one file's pages and matches each page's text. The
// cancellation signal is checked before the file and between pages; an
// in-progress page is never interrupted. An unexpected panic inside the
// task becomes a SearchError for the file and does not propagate.
func (s *Searcher) searchFile(path string, matcher *Matcher, contextChars int, isCancelled func() bool) (res fileResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("file task panic: path=%s err=%v", path, r))
			res.err = &SearchError{
				File:    path,
				Message: fmt.Sprintf("panic: %v", r),
				Detail:  string(debug.Stack()),
			}
		}
	}()

	if isCancelled() {
		return res
	}

	pages, err := ExtractPages(path)
	if err != nil {
		res.err = &SearchError{File: path, Message: err.Error()}
		return res
	}

	for _, page := range pages {
		if isCancelled() {
			break
		}
		if page.Text == "" {
			continue
		}
		for _, sp := range matcher.Find(page.Text) {
			res.hits = append(res.hits, SearchHit{
				File:    path,
				Page:    page.Number,
				Snippet: Snippet(page.Text, sp, contextChars),
			})
		}
	}
	return res
}
