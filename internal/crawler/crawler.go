// Package crawler implements the bounded, single-threaded traversal
// described in spec.md §4.3: a frontier-driven crawl from a seed URL,
// restricted to an "internal" domain, with dedup on normalized URL and a
// hard depth bound.
package crawler

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/rvega-ayllon/tse/internal/fetch"
	"github.com/rvega-ayllon/tse/internal/pagedir"
)

// Fetcher is the subset of fetch.Fetcher the crawl engine depends on,
// narrowed to an interface so tests can substitute a fake.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// Trace receives one human-readable line per crawl event — "Fetched",
// "Scanning", "Found", "IgnExtrn", "IgnDupl", "Added" — matching the
// original crawler's stdout trace format exactly.
type Trace func(depth int, verb, url string)

// Crawler holds the state of one crawl run: the seen-set, the frontier,
// the docID counter, and the depth bound.
type Crawler struct {
	seedURL   string
	pageDir   string
	maxDepth  int
	scopeHost string

	fetcher Fetcher
	trace   Trace
	guard   *resourceGuard

	seen     map[string]bool
	frontier frontier
	nextDoc  int

	Stats Stats
}

// Stats summarizes one completed crawl run.
type Stats struct {
	PagesFetched  int
	PagesFailed   int
	LinksFound    int
	LinksExternal int
	LinksDup      int
}

// New validates maxDepth and the seed URL, then constructs a Crawler
// ready to Run. maxDepth must be in [0, 10] per spec.md §4.3.
func New(seedURL, pageDir string, maxDepth int, trace Trace) (*Crawler, error) {
	if maxDepth < 0 || maxDepth > 10 {
		return nil, fmt.Errorf("maxDepth %d is not in range [0,10]", maxDepth)
	}

	normalizedSeed, err := Normalize(seedURL)
	if err != nil {
		return nil, fmt.Errorf("seed URL could not be normalized: %w", err)
	}

	u, err := url.Parse(normalizedSeed)
	if err != nil {
		return nil, fmt.Errorf("seed URL could not be parsed: %w", err)
	}
	if !IsInternal(normalizedSeed, u.Host) {
		return nil, fmt.Errorf("seed URL %s is not internal", normalizedSeed)
	}

	if trace == nil {
		trace = func(int, string, string) {}
	}

	return &Crawler{
		seedURL:   normalizedSeed,
		pageDir:   pageDir,
		maxDepth:  maxDepth,
		scopeHost: u.Host,
		fetcher:   fetch.NewFetcher(0),
		trace:     trace,
		guard:     newResourceGuard(),
		seen:      map[string]bool{normalizedSeed: true},
		nextDoc:   1,
	}, nil
}

// SetFetcher overrides the default HTTP fetcher, primarily for testing.
func (c *Crawler) SetFetcher(f Fetcher) {
	c.fetcher = f
}

// Run executes the crawl to completion: pop, fetch, persist, scan,
// repeat until the frontier is empty. Fetch failures are silent per
// spec.md §7 — the page is dropped, no docID is allocated, and the URL is
// never retried since it is already in the seen-set.
func (c *Crawler) Run() error {
	c.frontier.push(c.seedURL, 0)

	for !c.frontier.empty() {
		c.guard.throttle()

		entry, ok := c.frontier.pop()
		if !ok {
			break
		}

		html, err := c.fetcher.Fetch(entry.url)
		if err != nil {
			log.Debug().Err(err).Str("url", entry.url).Msg("crawler: fetch failed, dropping page")
			c.Stats.PagesFailed++
			continue
		}

		c.trace(entry.depth, "Fetched", entry.url)

		docID := c.nextDoc
		page := pagedir.Page{URL: entry.url, Depth: entry.depth, HTML: html}
		if err := pagedir.Save(page, c.pageDir, docID); err != nil {
			return fmt.Errorf("crawler: saving doc %d: %w", docID, err)
		}
		c.nextDoc++
		c.Stats.PagesFetched++

		if entry.depth < c.maxDepth {
			c.trace(entry.depth, "Scanning", entry.url)
			c.scan(entry.url, entry.depth, html)
		}
	}

	return nil
}

// scan extracts every link from html and, for each one that is internal
// and not already seen, pushes it onto the frontier at depth+1.
func (c *Crawler) scan(pageURL string, depth int, html string) {
	for _, link := range fetch.ExtractLinks(html, pageURL) {
		normalized, err := Normalize(link)
		if err != nil {
			continue
		}

		c.trace(depth, "Found", normalized)
		c.Stats.LinksFound++

		if !IsInternal(normalized, c.scopeHost) {
			c.trace(depth, "IgnExtrn", normalized)
			c.Stats.LinksExternal++
			continue
		}

		if c.seen[normalized] {
			c.trace(depth, "IgnDupl", normalized)
			c.Stats.LinksDup++
			continue
		}

		c.seen[normalized] = true
		c.frontier.push(normalized, depth+1)
		c.trace(depth, "Added", normalized)
	}
}
