// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixture(parts ...string) *ObjectTable {
	data := ""
	for _, p := range parts {
		data += p
	}
	return ScanObjects([]byte(data))
}

func TestResolvePages_SingleContents(t *testing.T) {
	table := scanFixture(
		pdfObject(1, "<< /Type /Page /Contents 2 0 R >>"),
		pdfObject(2, "<< /Length 0 >>"),
	)

	pages := ResolvePages(table)
	require.Len(t, pages, 1)
	assert.Equal(t, 1, pages[0].ObjectID)
	assert.Equal(t, []int{2}, pages[0].ContentIDs)
}

func TestResolvePages_ContentsArray(t *testing.T) {
	table := scanFixture(
		pdfObject(1, "<< /Type /Page /Contents [ 4 0 R 2 0 R 9 0 R ] >>"),
	)

	pages := ResolvePages(table)
	require.Len(t, pages, 1)
	assert.Equal(t, []int{4, 2, 9}, pages[0].ContentIDs, "array order must be kept")
}

func TestResolvePages_SingleRefWinsOverArray(t *testing.T) {
	// a single reference is tried before the array form
	table := scanFixture(
		pdfObject(1, "<< /Type /Page /Contents 3 0 R /Annots [ 8 0 R ] >>"),
	)

	pages := ResolvePages(table)
	require.Len(t, pages, 1)
	assert.Equal(t, []int{3}, pages[0].ContentIDs)
}

func TestResolvePages_PageTreeNodeIgnored(t *testing.T) {
	table := scanFixture(
		pdfObject(1, "<< /Type /Pages /Kids [ 2 0 R ] /Count 1 >>"),
		pdfObject(2, "<< /Type /Page /Contents 3 0 R >>"),
	)

	pages := ResolvePages(table)
	require.Len(t, pages, 1)
	assert.Equal(t, 2, pages[0].ObjectID)
}

func TestResolvePages_NoContents(t *testing.T) {
	table := scanFixture(pdfObject(1, "<< /Type /Page >>"))

	pages := ResolvePages(table)
	require.Len(t, pages, 1)
	assert.Empty(t, pages[0].ContentIDs)
}

func TestResolvePages_ScanOrder(t *testing.T) {
	table := scanFixture(
		pdfObject(9, "<< /Type /Page /Contents 1 0 R >>"),
		pdfObject(4, "<< /Type /Page /Contents 2 0 R >>"),
	)

	pages := ResolvePages(table)
	require.Len(t, pages, 2)
	assert.Equal(t, 9, pages[0].ObjectID)
	assert.Equal(t, 4, pages[1].ObjectID)
}
