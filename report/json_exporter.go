// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"encoding/json"
	"os"
	"time"

	pdfsearch "github.com/sassoftware/pdf-search"
)

// JSONExporter writes a RunLog as a single indented JSON document.
type JSONExporter struct{}

type jsonLog struct {
	SearchText string                  `json:"search_text"`
	StartedAt  time.Time               `json:"started_at"`
	Results    []jsonHit               `json:"results"`
	Errors     []pdfsearch.SearchError `json:"errors"`
}

type jsonHit struct {
	File    string `json:"file"`
	Page    int    `json:"page"`
	Snippet string `json:"snippet"`
	Link    string `json:"link,omitempty"`
}

func (e *JSONExporter) Export(log *RunLog, filename string) error {
	out := jsonLog{
		SearchText: log.SearchText,
		StartedAt:  log.StartedAt,
		Results:    make([]jsonHit, 0, len(log.Hits)),
		Errors:     log.Errors,
	}
	if out.Errors == nil {
		out.Errors = []pdfsearch.SearchError{}
	}
	for _, h := range log.Hits {
		link, err := pdfsearch.PageLink(h.File, h.Page)
		if err != nil {
			link = ""
		}
		out.Results = append(out.Results, jsonHit{
			File:    h.File,
			Page:    h.Page,
			Snippet: h.Snippet,
			Link:    link,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0o644)
}
