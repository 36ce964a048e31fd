// Package report writes a small JSON summary of a completed crawl run,
// in the spirit of the teacher's utils/reporter.go and models/task.go
// (TaskStats, CrawlTask.ID). It is pure observability: it never changes
// the page or index file formats and carries no query-visible behavior.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// CrawlReport summarizes one crawl run.
type CrawlReport struct {
	RunID         string        `json:"run_id"`
	SeedURL       string        `json:"seed_url"`
	MaxDepth      int           `json:"max_depth"`
	PagesFetched  int           `json:"pages_fetched"`
	PagesFailed   int           `json:"pages_failed"`
	LinksFound    int           `json:"links_found"`
	LinksExternal int           `json:"links_external"`
	LinksDup      int           `json:"links_duplicate"`
	Duration      time.Duration `json:"duration_ns"`
	FinishedAt    time.Time     `json:"finished_at"`
}

// New stamps a fresh run ID onto a report.
func New(seedURL string, maxDepth int) CrawlReport {
	return CrawlReport{
		RunID:    uuid.New().String(),
		SeedURL:  seedURL,
		MaxDepth: maxDepth,
	}
}

// Write saves the report as pageDir/.crawl-report.json.
func (r CrawlReport) Write(pageDir string) error {
	path := filepath.Join(pageDir, ".crawl-report.json")
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
