// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Helpers that assemble minimal synthetic PDF bodies. The engine reads only
// the object/stream layer, so no xref table or trailer is needed.

func pdfObject(id int, body string) string {
	return fmt.Sprintf("%d 0 obj\n%s\nendobj\n", id, body)
}

func pageObject(id int, contentIDs ...int) string {
	if len(contentIDs) == 1 {
		return pdfObject(id, fmt.Sprintf("<< /Type /Page /Contents %d 0 R >>", contentIDs[0]))
	}
	refs := ""
	for _, cid := range contentIDs {
		refs += fmt.Sprintf("%d 0 R ", cid)
	}
	return pdfObject(id, fmt.Sprintf("<< /Type /Page /Contents [ %s] >>", refs))
}

func contentObject(id int, content []byte, compress bool) string {
	filter := ""
	data := content
	if compress {
		var buf bytes.Buffer
		zw := zlib.NewWriter(&buf)
		zw.Write(content)
		zw.Close()
		data = buf.Bytes()
		filter = " /Filter /FlateDecode"
	}
	return fmt.Sprintf("%d 0 obj\n<< /Length %d%s >>\nstream\n%s\nendstream\nendobj\n",
		id, len(data), filter, data)
}

// buildPDF produces a document with one page per entry, each page showing
// its text through a single Tj operator.
func buildPDF(pageTexts ...string) []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	for i, text := range pageTexts {
		pageID := 2*i + 1
		contentID := 2*i + 2
		b.WriteString(pageObject(pageID, contentID))
		b.WriteString(contentObject(contentID, []byte(fmt.Sprintf("BT (%s) Tj ET", text)), false))
	}
	b.WriteString("%%EOF\n")
	return b.Bytes()
}

func writeTempPDF(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
