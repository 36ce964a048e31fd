// Package query implements the boolean query mini-language: tokenization,
// grammar validation, set-algebra evaluation over posting lists, and
// ranking of the resulting score map.
package query

import (
	"fmt"
	"strings"
)

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Tokens are the ordered word/operator tokens produced by Tokenize.
type Tokens []string

const (
	opAnd = "and"
	opOr  = "or"
)

func isOperator(tok string) bool {
	return tok == opAnd || tok == opOr
}

// Tokenize splits a query line into lowercase word/operator tokens.
//
// It rejects the query if any character is neither a letter nor
// whitespace, returning an error naming the offending character. An empty
// token list (query had no letters at all) is not an error: it is
// reported via the second return value so the caller can silently treat
// it as "no match".
func Tokenize(line string) (Tokens, bool, error) {
	for _, r := range line {
		if !isASCIILetter(r) && !isASCIISpace(r) {
			return nil, false, fmt.Errorf("bad character '%c'", r)
		}
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return !isASCIILetter(r)
	})
	if len(fields) == 0 {
		return nil, false, nil
	}

	tokens := make(Tokens, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens, true, nil
}

// Validate enforces the query grammar: the first and last tokens must not
// be operators, and two operators must never be adjacent.
func Validate(tokens Tokens) error {
	if len(tokens) == 0 {
		return nil
	}

	if isOperator(tokens[0]) {
		return fmt.Errorf("'%s' cannot be first", tokens[0])
	}
	if isOperator(tokens[len(tokens)-1]) {
		return fmt.Errorf("'%s' cannot be last", tokens[len(tokens)-1])
	}

	prevWasOperator := false
	for i := 1; i < len(tokens)-1; i++ {
		if isOperator(tokens[i]) {
			if prevWasOperator {
				return fmt.Errorf("'%s' and '%s' cannot be adjacent", tokens[i-1], tokens[i])
			}
			prevWasOperator = true
		} else {
			prevWasOperator = false
		}
	}
	return nil
}

// String renders tokens back into a single space-separated line, the
// form the querier echoes back as "Query: ...".
func (t Tokens) String() string {
	return strings.Join(t, " ")
}
