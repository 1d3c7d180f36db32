// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package pdfsearch

import (
	"bytes"
	"compress/flate"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/sassoftware/pdf-search/logger"
)

var (
	streamKeyword    = []byte("stream")
	endstreamKeyword = []byte("endstream")
	flateFilterName  = []byte("/FlateDecode")
)

// ExtractStreams returns the stream payloads contained in an object body,
// in document order. When the object's header declares /FlateDecode, each
// payload is decompressed: first as a complete zlib stream, then as a raw
// headerless DEFLATE stream. If both attempts fail the compressed bytes are
// returned unchanged; decompression failure is never fatal at this layer.
func ExtractStreams(body []byte) [][]byte {
	var streams [][]byte
	pos := 0
	for {
		idx := bytes.Index(body[pos:], streamKeyword)
		if idx < 0 {
			break
		}
		start := pos + idx + len(streamKeyword)
		// The "stream" keyword is followed by CRLF or LF; the payload
		// begins after it.
		if start < len(body) && (body[start] == '\n' || body[start] == '\r') {
			if body[start] == '\r' && start+1 < len(body) && body[start+1] == '\n' {
				start += 2
			} else {
				start++
			}
		}
		rel := bytes.Index(body[start:], endstreamKeyword)
		if rel < 0 {
			// missing endstream terminator, drop the rest of the object
			logger.Debug("stream without endstream, skipped")
			break
		}
		raw := body[start : start+rel]
		header := body[:pos+idx]
		if bytes.Contains(header, flateFilterName) {
			streams = append(streams, inflate(raw))
		} else {
			streams = append(streams, raw)
		}
		pos = start + rel + len(endstreamKeyword)
	}
	return streams
}

// inflate decompresses DEFLATE data, trying the zlib framing first and
// falling back to a raw stream. On double failure the input is returned
// as-is so extraction can continue best-effort.
func inflate(raw []byte) []byte {
	if zr, err := zlib.NewReader(bytes.NewReader(raw)); err == nil {
		data, err := io.ReadAll(zr)
		zr.Close()
		if err == nil {
			return data
		}
	}

	fr := flate.NewReader(bytes.NewReader(raw))
	data, err := io.ReadAll(fr)
	fr.Close()
	if err == nil {
		return data
	}

	logger.Debug(fmt.Sprintf("flate decode failed on %d bytes, keeping raw", len(raw)))
	return raw
}
