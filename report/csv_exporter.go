// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package report

import (
	"encoding/csv"
	"os"
	"strconv"
)

// CSVExporter writes a RunLog as CSV with two sections, "results" and
// "errors", taking the place of the two sheets a spreadsheet export would
// use.
type CSVExporter struct{}

func (e *CSVExporter) Export(log *RunLog, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	w.Write([]string{"results"})
	w.Write([]string{"file", "page", "snippet"})
	for _, h := range log.Hits {
		w.Write([]string{h.File, strconv.Itoa(h.Page), h.Snippet})
	}
	w.Write([]string{})

	w.Write([]string{"errors"})
	w.Write([]string{"file", "message", "detail"})
	for _, se := range log.Errors {
		w.Write([]string{se.File, se.Message, se.Detail})
	}

	w.Flush()
	return w.Error()
}
