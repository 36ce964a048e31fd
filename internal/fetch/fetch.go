// Package fetch is the external collaborator spec.md assumes: given a
// URL it fetches the page HTML, and given HTML it extracts outgoing
// links and indexable words. The crawl engine and indexer driver are the
// only callers; neither needs to know the HTTP/HTML plumbing beneath.
package fetch

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/gocolly/colly/v2"
)

// Fetcher performs the single HTTP GET per call the crawl engine expects
// — one fetch in flight at a time, no retries, no follow-on requests.
type Fetcher struct {
	collector *colly.Collector
	timeout   time.Duration
}

// NewFetcher builds a Fetcher whose requests time out after timeout. A
// zero timeout falls back to 30s.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := colly.NewCollector(colly.Async(false))
	c.SetRequestTimeout(timeout)
	return &Fetcher{collector: c, timeout: timeout}
}

// Fetch retrieves the HTML body at url. It reports an error on any
// network/HTTP failure; per spec.md §4.3 the crawl engine treats a fetch
// failure as silent (the page is simply dropped), so callers typically
// only log this error, never abort the crawl on it.
func (f *Fetcher) Fetch(url string) (string, error) {
	var (
		body []byte
		fail error
	)

	c := f.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		decoded, err := decodeBody(r.Headers.Get("Content-Encoding"), r.Body)
		if err != nil {
			fail = err
			return
		}
		body = decoded
	})
	c.OnError(func(r *colly.Response, err error) {
		fail = err
	})

	if err := c.Visit(url); err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	if fail != nil {
		return "", fmt.Errorf("fetch %s: %w", url, fail)
	}
	return string(body), nil
}

func decodeBody(contentEncoding string, body []byte) ([]byte, error) {
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "gzip":
		r, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		return io.ReadAll(r)

	case "deflate":
		r := flate.NewReader(bytes.NewReader(body))
		defer r.Close()
		return io.ReadAll(r)

	case "br":
		r := brotli.NewReader(bytes.NewReader(body))
		return io.ReadAll(r)

	default:
		return body, nil
	}
}
