package query

import "sort"

// Ranked is one ranked result: a document and the score it received.
type Ranked struct {
	DocID int
	Score int
}

// Rank returns every docID in pages with a positive score, ordered by
// descending score; pages itself is not modified. Ties are broken by the lower docID — an
// explicit, deterministic tiebreak the original C querier left to
// hashtable iteration order (see spec.md §9 Open Questions).
func Rank(pages ScoreMap) []Ranked {
	docIDs := make([]int, 0, len(pages))
	for docID, score := range pages {
		if score > 0 {
			docIDs = append(docIDs, docID)
		}
	}

	sort.Slice(docIDs, func(i, j int) bool {
		si, sj := pages[docIDs[i]], pages[docIDs[j]]
		if si != sj {
			return si > sj
		}
		return docIDs[i] < docIDs[j]
	})

	ranked := make([]Ranked, len(docIDs))
	for i, docID := range docIDs {
		ranked[i] = Ranked{DocID: docID, Score: pages[docID]}
	}
	return ranked
}
