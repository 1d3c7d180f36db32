// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/sassoftware/pdf-search/logger"
)

var (
	// The trailing word boundary keeps /Pages (the page-tree node) from
	// matching as a page dictionary.
	rePageType       = regexp.MustCompile(`/Type\s*/Page\b`)
	reContentsSingle = regexp.MustCompile(`/Contents\s+(\d+)\s+0\s+R`)
	reContentsArray  = regexp.MustCompile(`(?s)/Contents\s*\[(.*?)\]`)
	reIndirectRef    = regexp.MustCompile(`(\d+)\s+0\s+R`)
)

// A PageNode pairs a page dictionary's object id with the ids of the
// content-stream objects its /Contents key refers to, in listed order.
type PageNode struct {
	ObjectID   int
	ContentIDs []int
}

// ResolvePages walks the object table in scan order and builds a PageNode
// for every object whose body carries a /Type /Page marker. Content
// references are resolved from a single "/Contents N 0 R" reference first,
// then from a "/Contents [...]" array. Only one level of indirection is
// followed; whether each referenced id actually exists is checked later,
// when content is read.
func ResolvePages(table *ObjectTable) []PageNode {
	var pages []PageNode
	for _, id := range table.IDs() {
		body, _ := table.Get(id)
		if !rePageType.Match(body) {
			continue
		}
		pages = append(pages, PageNode{
			ObjectID:   id,
			ContentIDs: contentRefs(body),
		})
	}
	logger.Debug(fmt.Sprintf("resolved %d page dictionaries", len(pages)), true)
	return pages
}

func contentRefs(body []byte) []int {
	if m := reContentsSingle.FindSubmatch(body); m != nil {
		id, err := strconv.Atoi(string(m[1]))
		if err == nil {
			return []int{id}
		}
	}
	m := reContentsArray.FindSubmatch(body)
	if m == nil {
		return nil
	}
	var ids []int
	for _, ref := range reIndirectRef.FindAllSubmatch(m[1], -1) {
		id, err := strconv.Atoi(string(ref[1]))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
