// Response compression for the synthd API.

package engine

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

// gzipWriterPool reuses compressors across requests.
var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

// GzipMiddleware compresses responses for clients that accept gzip.
type GzipMiddleware struct {
	handler http.Handler
}

// NewGzipMiddleware wraps a handler with gzip compression.
func NewGzipMiddleware(handler http.Handler) *GzipMiddleware {
	return &GzipMiddleware{handler: handler}
}

// ServeHTTP implements http.Handler.
func (m *GzipMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		m.handler.ServeHTTP(w, r)
		return
	}

	gz := gzipWriterPool.Get().(*gzip.Writer)
	gz.Reset(w)
	defer func() {
		_ = gz.Close()
		gzipWriterPool.Put(gz)
	}()

	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Add("Vary", "Accept-Encoding")
	m.handler.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gz: gz}, r)
}

// gzipResponseWriter routes the body through the compressor while headers
// and status pass straight through.
type gzipResponseWriter struct {
	http.ResponseWriter
	gz *gzip.Writer
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	return w.gz.Write(b)
}
