// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import "fmt"

// DocumentReadError reports a file that could not be opened or read.
// It is surfaced as one SearchError for that file; other files continue.
type DocumentReadError struct {
	Path string
	Err  error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("read document %s: %v", e.Path, e.Err)
}

func (e *DocumentReadError) Unwrap() error { return e.Err }

// PatternError reports an invalid regular-expression pattern. It is fatal
// to a run and is surfaced before any file is processed.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// RunFatalError reports a failure in the pool orchestration itself, as
// opposed to an individual file task. The run ends early but partial
// results are preserved.
type RunFatalError struct {
	Cause interface{}
}

func (e *RunFatalError) Error() string {
	return fmt.Sprintf("search run aborted: %v", e.Cause)
}
