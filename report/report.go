// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package report exports the outcome of a search run to a file for review
// outside the tool. Exporters mirror the run's two result collections:
// hits (file, page, snippet) and errors (file, message, detail).
package report

import (
	"time"

	pdfsearch "github.com/sassoftware/pdf-search"
)

// RunLog is the exportable record of one search run.
type RunLog struct {
	SearchText string
	StartedAt  time.Time
	Hits       []pdfsearch.SearchHit
	Errors     []pdfsearch.SearchError
}

// Exporter writes a RunLog to the named file in some format.
type Exporter interface {
	Export(log *RunLog, filename string) error
}
