package middleware

import (
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
)

// CompressionConfig tunes the brotli response middleware.
type CompressionConfig struct {
	// Quality is the brotli level, 0..11.
	Quality int
	// MinLength is the body size at which compression starts. Shorter
	// bodies, such as error envelopes and single questions, go out as is.
	MinLength int
	// Skipper bypasses compression for matching requests.
	Skipper func(c *gin.Context) bool
}

var DefaultCompressionConfig = CompressionConfig{
	Quality:   brotli.DefaultCompression,
	MinLength: 1024,
}

// compressWriter holds the body back until MinLength bytes have been
// written, then switches the response to brotli for the remainder.
type compressWriter struct {
	gin.ResponseWriter
	br         *brotli.Writer
	buf        []byte
	minLength  int
	compressed bool
}

func (w *compressWriter) Write(data []byte) (int, error) {
	if w.compressed {
		return w.br.Write(data)
	}

	w.buf = append(w.buf, data...)
	if len(w.buf) < w.minLength {
		return len(data), nil
	}

	w.compressed = true
	h := w.ResponseWriter.Header()
	h.Set("Content-Encoding", "br")
	h.Del("Content-Length")
	if _, err := w.br.Write(w.buf); err != nil {
		return 0, err
	}
	w.buf = nil
	return len(data), nil
}

func (w *compressWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// finish closes the brotli stream or writes a short body uncompressed.
func (w *compressWriter) finish() error {
	if w.compressed {
		return w.br.Close()
	}
	if len(w.buf) == 0 {
		return nil
	}
	_, err := w.ResponseWriter.Write(w.buf)
	w.buf = nil
	return err
}

// Compression returns the brotli middleware with DefaultCompressionConfig.
func Compression() gin.HandlerFunc {
	return CompressionWithConfig(DefaultCompressionConfig)
}

// CompressionWithConfig compresses JSON responses for clients that send
// "Accept-Encoding: br".
func CompressionWithConfig(cfg CompressionConfig) gin.HandlerFunc {
	if cfg.Quality < brotli.BestSpeed || cfg.Quality > brotli.BestCompression {
		cfg.Quality = brotli.DefaultCompression
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultCompressionConfig.MinLength
	}

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodHead || !acceptsBrotli(c.Request) {
			c.Next()
			return
		}
		if cfg.Skipper != nil && cfg.Skipper(c) {
			c.Next()
			return
		}

		c.Header("Vary", "Accept-Encoding")

		w := &compressWriter{
			ResponseWriter: c.Writer,
			br:             brotli.NewWriterLevel(c.Writer, cfg.Quality),
			minLength:      cfg.MinLength,
		}
		c.Writer = w
		defer func() {
			c.Writer = w.ResponseWriter
			if err := w.finish(); err != nil {
				_ = c.Error(err)
			}
		}()

		c.Next()
	}
}

func acceptsBrotli(r *http.Request) bool {
	for _, enc := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		// Drop any ";q=" weight.
		name, q, _ := strings.Cut(strings.TrimSpace(enc), ";")
		if strings.EqualFold(strings.TrimSpace(name), "br") {
			return strings.TrimSpace(strings.ReplaceAll(q, " ", "")) != "q=0"
		}
	}
	return false
}
