package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNewStampsRunID(t *testing.T) {
	r := New("http://example.com", 3)
	if r.RunID == "" {
		t.Error("New() left RunID empty")
	}
	if r.SeedURL != "http://example.com" || r.MaxDepth != 3 {
		t.Errorf("New() = %+v, want SeedURL/MaxDepth preserved", r)
	}
}

func TestWriteProducesReadableJSON(t *testing.T) {
	dir := t.TempDir()
	r := New("http://example.com", 2)
	r.PagesFetched = 5

	if err := r.Write(dir); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ".crawl-report.json"))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}

	var got CrawlReport
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.PagesFetched != 5 || got.RunID != r.RunID {
		t.Errorf("round-tripped report = %+v, want PagesFetched=5 RunID=%s", got, r.RunID)
	}
}
