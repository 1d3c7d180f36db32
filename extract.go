// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"fmt"
	"os"
	"strings"

	"github.com/sassoftware/pdf-search/logger"
)

// PageText holds the reconstructed text of one page. Page numbers are
// 1-based and sequential, assigned in the order page dictionaries are
// encountered while scanning the file, which may differ from the logical
// page-tree order.
type PageText struct {
	Number int
	Text   string
}

// ExtractPages reads a PDF file and reconstructs the text of each page.
// The returned slice is ordered by page number. A file that cannot be read
// yields a DocumentReadError; everything past that point is best-effort,
// so a malformed document produces fewer pages or empty text rather than
// an error. The raw document bytes live only for the duration of the call.
func ExtractPages(path string) ([]PageText, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentReadError{Path: path, Err: err}
	}
	logger.Debug(fmt.Sprintf("document %s: %d bytes", path, len(data)), true)

	table := ScanObjects(data)
	nodes := ResolvePages(table)

	pages := make([]PageText, 0, len(nodes))
	for i, node := range nodes {
		var texts []string
		for _, cid := range node.ContentIDs {
			body, ok := table.Get(cid)
			if !ok {
				// unresolved content reference, partial page
				logger.Debug(fmt.Sprintf("page object %d: content %d not found", node.ObjectID, cid))
				continue
			}
			for _, stream := range ExtractStreams(body) {
				if text := DecodeContentText(stream); text != "" {
					texts = append(texts, text)
				}
			}
		}
		pages = append(pages, PageText{
			Number: i + 1,
			Text:   strings.Join(texts, "\n"),
		})
	}

	logger.Debug(fmt.Sprintf("document %s: extracted %d pages", path, len(pages)), true)
	return pages, nil
}
