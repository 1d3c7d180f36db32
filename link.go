// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// PageLink turns a hit's file path and 1-based page number into a file URI
// with a page fragment, e.g. file:///docs/report.pdf#page=3. Viewers that
// honor the fragment open the document at that page.
func PageLink(path string, page int) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if page < 1 {
		page = 1
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return fmt.Sprintf("%s#page=%d", u.String(), page), nil
}
