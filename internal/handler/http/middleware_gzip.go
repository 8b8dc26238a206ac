// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Compressors and decompressors are pooled per process. A pooled value is
// always Reset onto the current request or response before use.
var (
	compressors = sync.Pool{
		New: func() any { return gzip.NewWriter(io.Discard) },
	}
	decompressors = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip.
//
// A body that is not valid gzip is answered with InvalidInput before the
// next handler runs. A handler that writes nothing produces no body and no
// Content-Encoding.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				writeError(w, r, errInvalidGzip)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		cw := &compressedWriter{ResponseWriter: w}
		defer cw.finish()

		next.ServeHTTP(cw, r)
	})
}

// gzipBody is a request body read through a pooled gzip reader. Closing it
// returns the reader to the pool and closes the raw body.
type gzipBody struct {
	*gzip.Reader
	raw io.Closer
}

func newGzipBody(raw io.ReadCloser) (*gzipBody, error) {
	zr := decompressors.Get().(*gzip.Reader)
	if err := zr.Reset(raw); err != nil {
		decompressors.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr, raw: raw}, nil
}

func (b *gzipBody) Close() error {
	if b.Reader == nil {
		return nil
	}
	_ = b.Reader.Close()
	decompressors.Put(b.Reader)
	b.Reader = nil
	return b.raw.Close()
}

// compressedWriter takes a compressor from the pool on the first header or
// body write and hands it back in finish.
type compressedWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (cw *compressedWriter) WriteHeader(statusCode int) {
	if cw.zw != nil {
		return
	}

	h := cw.Header()
	h.Set("Content-Encoding", "gzip")
	h.Add("Vary", "Accept-Encoding")
	h.Del("Content-Length")

	cw.zw = compressors.Get().(*gzip.Writer)
	cw.zw.Reset(cw.ResponseWriter)
	cw.ResponseWriter.WriteHeader(statusCode)
}

func (cw *compressedWriter) Write(data []byte) (int, error) {
	if cw.zw == nil {
		cw.WriteHeader(http.StatusOK)
	}
	return cw.zw.Write(data)
}

// finish flushes the gzip trailer. It is a no-op when nothing was written.
func (cw *compressedWriter) finish() {
	if cw.zw == nil {
		return
	}
	_ = cw.zw.Close()
	compressors.Put(cw.zw)
	cw.zw = nil
}
