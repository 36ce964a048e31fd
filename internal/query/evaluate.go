package query

import "github.com/rvega-ayllon/tse/internal/index"

// ScoreMap is a transient docID -> score map produced during evaluation.
type ScoreMap map[int]int

// Evaluate walks tokens left to right, accumulating the and-sequence /
// or-sequence score described in spec.md §4.6:
//
//	score(d) = sum over and-sequences of (min over words in the sequence of count(word, d))
//
// Tokens is assumed to already satisfy Validate.
func Evaluate(tokens Tokens, idx *index.Index) ScoreMap {
	pages := ScoreMap{}

	i := 0
	for i < len(tokens) {
		temp := toScoreMap(idx.Get(tokens[i]))
		i++

		for i < len(tokens) && tokens[i] != opOr {
			if tokens[i] == opAnd {
				i++
				continue
			}
			temp = intersect(temp, toScoreMap(idx.Get(tokens[i])))
			i++
		}

		pages = union(pages, temp)

		if i < len(tokens) && tokens[i] == opOr {
			i++
		}
	}

	return pages
}

func toScoreMap(postings index.PostingList) ScoreMap {
	sm := make(ScoreMap, len(postings))
	for docID, count := range postings {
		sm[docID] = count
	}
	return sm
}

// intersect returns, for every docID present in both a and b, the
// per-docID minimum of their scores. docIDs present in only one map are
// dropped.
func intersect(a, b ScoreMap) ScoreMap {
	result := make(ScoreMap)
	for docID, countA := range a {
		if countB, ok := b[docID]; ok {
			if countA < countB {
				result[docID] = countA
			} else {
				result[docID] = countB
			}
		}
	}
	return result
}

// union returns the per-docID sum of a and b, treating a missing entry
// in either map as contributing 0.
func union(a, b ScoreMap) ScoreMap {
	result := make(ScoreMap, len(a)+len(b))
	for docID, count := range a {
		result[docID] = count
	}
	for docID, count := range b {
		result[docID] += count
	}
	return result
}
