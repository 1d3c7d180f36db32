// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CollectFiles gathers the PDF files a run should process: the contents of
// folder (recursively when recursive is set) filtered to the .pdf
// extension, plus the explicitly named file when it is a PDF and not
// already listed. Files are sorted by ascending size so small files finish
// first. Unreadable directory entries are skipped, not reported; a missing
// folder yields an error only when no usable input remains.
func CollectFiles(folder, file string, recursive bool) ([]string, error) {
	var files []string

	if folder != "" {
		if recursive {
			err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return nil
				}
				if !d.IsDir() && isPDFName(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil && file == "" {
				return nil, err
			}
		} else {
			entries, err := os.ReadDir(folder)
			if err != nil && file == "" {
				return nil, err
			}
			for _, e := range entries {
				if !e.IsDir() && isPDFName(e.Name()) {
					files = append(files, filepath.Join(folder, e.Name()))
				}
			}
		}
	}

	if file != "" && isPDFName(file) {
		if fi, err := os.Stat(file); err == nil && !fi.IsDir() {
			seen := false
			for _, f := range files {
				if f == file {
					seen = true
					break
				}
			}
			if !seen {
				files = append(files, file)
			}
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return fileSize(files[i]) < fileSize(files[j])
	})
	return files, nil
}

func isPDFName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

func fileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}
