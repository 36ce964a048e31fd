// Package index implements the inverted index shared by the indexer and
// querier: a map from normalized word to posting list (docID -> count).
package index

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Posting is a (docID, count) pair within one word's posting list.
type Posting struct {
	DocID int
	Count int
}

// PostingList maps docID to occurrence count for a single word. Callers
// must treat a list returned by Get as read-only.
type PostingList map[int]int

// Index is the word -> posting-list map. The zero value is not usable;
// construct one with New.
type Index struct {
	words map[string]PostingList
}

// New constructs an empty index. hint sizes the internal map but is
// otherwise invisible to callers.
func New(hint int) *Index {
	if hint < 0 {
		hint = 0
	}
	return &Index{words: make(map[string]PostingList, hint)}
}

// Add increments the posting for (word, docID) by one, creating the word
// entry and/or posting as needed. It is a no-op if idx is nil, word is
// empty, or docID < 1.
func (idx *Index) Add(word string, docID int) {
	if idx == nil || word == "" || docID < 1 {
		return
	}
	postings := idx.words[word]
	if postings == nil {
		postings = make(PostingList)
		idx.words[word] = postings
	}
	postings[docID]++
}

// Set sets the posting for (word, docID) to exactly count, creating
// entries as needed. It is a no-op if idx is nil, word is empty, docID <
// 1, or count < 0 (the documented contract, enforced here unlike the
// original C implementation it was ported from).
func (idx *Index) Set(word string, docID int, count int) {
	if idx == nil || word == "" || docID < 1 || count < 0 {
		return
	}
	postings := idx.words[word]
	if postings == nil {
		postings = make(PostingList)
		idx.words[word] = postings
	}
	postings[docID] = count
}

// Get returns the posting list for word, or nil if the word has no
// postings. The returned map is borrowed and must not be mutated.
func (idx *Index) Get(word string) PostingList {
	if idx == nil {
		return nil
	}
	return idx.words[word]
}

// Close releases the index's storage. Go's garbage collector reclaims
// the backing map on its own, but Close is provided so callers that mirror
// the original index_new/index_delete lifecycle have an explicit release
// point; it is safe to call on a nil Index.
func (idx *Index) Close() {
	if idx == nil {
		return
	}
	idx.words = nil
}

// Words returns the number of distinct words currently in the index.
func (idx *Index) Words() int {
	if idx == nil {
		return 0
	}
	return len(idx.words)
}

// Save writes the index to path in the textual format:
//
//	word docID count [docID count]...
//
// one line per word. I/O failure is silently swallowed, matching the
// documented save contract: a bad path yields a no-op rather than an
// error.
func (idx *Index) Save(path string) {
	if idx == nil || path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	for word, postings := range idx.words {
		fmt.Fprintf(w, "%s ", word)
		for docID, count := range postings {
			fmt.Fprintf(w, "%d %d ", docID, count)
		}
		fmt.Fprint(w, "\n")
	}
}

// Load reads the textual index format from path. It returns (nil, false)
// if path cannot be opened for reading.
func Load(path string) (*Index, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	idx := New(0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := fields[0]
		pairs := fields[1:]
		for i := 0; i+1 < len(pairs); i += 2 {
			docID, errA := strconv.Atoi(pairs[i])
			count, errB := strconv.Atoi(pairs[i+1])
			if errA != nil || errB != nil {
				break
			}
			idx.Set(word, docID, count)
		}
	}
	return idx, true
}
