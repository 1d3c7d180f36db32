// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"

	"github.com/sassoftware/pdf-search/logger"
)

// reObjHeader matches the header of an indirect object, "N 0 obj".
// Only generation 0 is recognized; incremental updates are out of scope.
var reObjHeader = regexp.MustCompile(`\b(\d+)\s+0\s+obj\b`)

var endobjKeyword = []byte("endobj")

// ObjectTable maps indirect object ids to their body bytes while
// preserving the order in which object headers were first encountered.
// Scan order matters: page numbering is derived from it.
type ObjectTable struct {
	ids  []int
	byID map[int][]byte
}

// Get returns the body of the object with the given id.
func (t *ObjectTable) Get(id int) ([]byte, bool) {
	body, ok := t.byID[id]
	return body, ok
}

// Len returns the number of distinct object ids in the table.
func (t *ObjectTable) Len() int {
	return len(t.ids)
}

// IDs returns the object ids in scan order.
func (t *ObjectTable) IDs() []int {
	return t.ids
}

// ScanObjects scans raw document bytes for indirect objects. An object body
// runs from the end of its "N 0 obj" header to the next "endobj" keyword.
// Headers with no matching "endobj" are skipped; a duplicate id replaces the
// earlier body but keeps its original scan position (last-scanned wins).
// Object bodies are not validated here.
func ScanObjects(data []byte) *ObjectTable {
	table := &ObjectTable{byID: make(map[int][]byte)}

	for _, loc := range reObjHeader.FindAllSubmatchIndex(data, -1) {
		id, err := strconv.Atoi(string(data[loc[2]:loc[3]]))
		if err != nil {
			continue
		}
		start := loc[1]
		rel := bytes.Index(data[start:], endobjKeyword)
		if rel < 0 {
			// malformed tail, skip silently
			logger.Debug(fmt.Sprintf("object %d has no endobj, skipped", id))
			continue
		}
		if _, seen := table.byID[id]; !seen {
			table.ids = append(table.ids, id)
		}
		table.byID[id] = data[start : start+rel]
	}

	logger.Debug(fmt.Sprintf("scanned %d indirect objects", table.Len()), true)
	return table
}
