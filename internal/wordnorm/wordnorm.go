// Package wordnorm holds the word-normalization rule the indexer driver
// applies to page words. The query tokenizer does not call it: it
// lowercases query words the same way but does not drop words shorter
// than MinLength, so such a query word matches no document.
package wordnorm

import "strings"

// MinLength is the shortest word the index will ever store a key for.
const MinLength = 3

// Normalize lowercases raw and reports whether it is long enough (>=
// MinLength letters) to be indexed or matched. Callers are expected to
// have already isolated raw to a maximal run of ASCII letters; Normalize
// does not itself strip non-letter characters.
func Normalize(raw string) (string, bool) {
	if len(raw) < MinLength {
		return "", false
	}
	return strings.ToLower(raw), true
}
