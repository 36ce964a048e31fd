// Package indexer implements the Indexer Driver (spec.md §4.4): it
// sweeps a crawler-produced page directory docID by docID, tokenizes
// each page's words, and accumulates postings into an in-memory index.
package indexer

import (
	"github.com/rvega-ayllon/tse/internal/fetch"
	"github.com/rvega-ayllon/tse/internal/index"
	"github.com/rvega-ayllon/tse/internal/pagedir"
	"github.com/rvega-ayllon/tse/internal/wordnorm"
)

// ProgressFunc is called once per successfully loaded page, after it has
// been indexed, so callers can drive a progress bar.
type ProgressFunc func(docID int)

// Build sweeps dir for docID = 1, 2, 3, ... until pagedir.Load reports a
// missing page, indexing every page it finds along the way. The sweep is
// sequential and docIDs visited strictly ascend with no gaps, per
// spec.md §4.4.
func Build(dir string, onProgress ProgressFunc) *index.Index {
	idx := index.New(600)

	for docID := 1; ; docID++ {
		page, ok := pagedir.Load(dir, docID)
		if !ok {
			break
		}
		indexPage(idx, page.HTML, docID)
		if onProgress != nil {
			onProgress(docID)
		}
	}

	return idx
}

// indexPage tokenizes a single page's HTML, lowercasing words the same way
// the query tokenizer does and dropping words shorter than
// wordnorm.MinLength, and adds each surviving word to idx under docID.
func indexPage(idx *index.Index, html string, docID int) {
	for _, raw := range fetch.ExtractWords(html) {
		word, ok := wordnorm.Normalize(raw)
		if !ok {
			continue
		}
		idx.Add(word, docID)
	}
}
