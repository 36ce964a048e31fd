package indexer

import (
	"testing"

	"github.com/rvega-ayllon/tse/internal/pagedir"
)

func TestBuildSweepsDenseDocIDsAndStopsAtGap(t *testing.T) {
	dir := t.TempDir()
	pagedir.Init(dir)
	pagedir.Save(pagedir.Page{URL: "http://example.com/1", Depth: 0, HTML: "<p>cat dog</p>"}, dir, 1)
	pagedir.Save(pagedir.Page{URL: "http://example.com/2", Depth: 1, HTML: "<p>dog bird</p>"}, dir, 2)

	var visited []int
	idx := Build(dir, func(docID int) { visited = append(visited, docID) })
	defer idx.Close()

	if len(visited) != 2 || visited[0] != 1 || visited[1] != 2 {
		t.Errorf("visited = %v, want [1 2]", visited)
	}

	if got := idx.Get("dog"); got[1] != 1 || got[2] != 1 {
		t.Errorf("dog postings = %v, want {1:1, 2:1}", got)
	}
	if got := idx.Get("cat")[1]; got != 1 {
		t.Errorf("cat[1] = %d, want 1", got)
	}
	if got := idx.Get("bird")[2]; got != 1 {
		t.Errorf("bird[2] = %d, want 1", got)
	}
}

func TestBuildFiltersShortWords(t *testing.T) {
	dir := t.TempDir()
	pagedir.Init(dir)
	pagedir.Save(pagedir.Page{URL: "http://example.com/1", Depth: 0, HTML: "<p>a an cat</p>"}, dir, 1)

	idx := Build(dir, nil)
	defer idx.Close()

	if idx.Get("a") != nil {
		t.Error("single-letter word should be filtered out")
	}
	if idx.Get("an") != nil {
		t.Error("two-letter word should be filtered out")
	}
	if idx.Get("cat")[1] != 1 {
		t.Error("three-letter word should survive normalization")
	}
}

func TestBuildOnEmptyDirectoryYieldsEmptyIndex(t *testing.T) {
	dir := t.TempDir()
	pagedir.Init(dir)

	idx := Build(dir, nil)
	defer idx.Close()

	if idx.Words() != 0 {
		t.Errorf("Words() = %d, want 0 for an empty page directory", idx.Words())
	}
}

func TestBuildNormalizationMatchesQueryTimeNormalization(t *testing.T) {
	dir := t.TempDir()
	pagedir.Init(dir)
	pagedir.Save(pagedir.Page{URL: "http://example.com/1", Depth: 0, HTML: "<p>DOG Dog dog</p>"}, dir, 1)

	idx := Build(dir, nil)
	defer idx.Close()

	// Case folding at build time must match the tokenizer's lowercasing,
	// so a query for "dog" finds pages indexed under any original casing.
	if got := idx.Get("dog")[1]; got != 3 {
		t.Errorf("dog[1] = %d, want 3 (case-insensitive accumulation)", got)
	}
	if idx.Get("DOG") != nil {
		t.Error("index should store only lowercase words")
	}
}
