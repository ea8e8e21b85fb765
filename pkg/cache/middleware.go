package cache

import (
	"bytes"
	"net/http"
)

const (
	HeaderCache = "X-Cache"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

// captureWriter records the status, content type and body of a response
// while passing it through.
type captureWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (w *captureWriter) WriteHeader(code int) {
	if w.statusCode == 0 {
		w.statusCode = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Middleware caches successful GET responses in c, keyed by path and query.
// Hits are answered with X-Cache: HIT and the stored content type; misses
// reach the handler with X-Cache: MISS. Only 200 responses are stored.
func Middleware(c *LRUCache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.RequestURI()
			if cached, ok := c.Get(key); ok {
				if cached.ContentType != "" {
					w.Header().Set("Content-Type", cached.ContentType)
				}
				w.Header().Set(HeaderCache, cacheHit)
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(cached.Body)
				return
			}

			cw := &captureWriter{ResponseWriter: w}
			cw.Header().Set(HeaderCache, cacheMiss)
			next.ServeHTTP(cw, r)

			if cw.statusCode == http.StatusOK {
				c.Set(key, Response{
					Body:        bytes.Clone(cw.body.Bytes()),
					ContentType: cw.Header().Get("Content-Type"),
				})
			}
		})
	}
}
