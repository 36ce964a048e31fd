package query

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rvega-ayllon/tse/internal/index"
	"github.com/rvega-ayllon/tse/internal/pagedir"
)

const separator = "----------------------------------"

// Session drives the interactive query loop: print a prompt (only when
// stdin is a terminal), read a line, parse/validate/evaluate/rank it,
// print results, and repeat until EOF. Per-query errors are printed and
// the session continues; only EOF ends it.
type Session struct {
	idx     *index.Index
	pageDir string
	in      *bufio.Scanner
	out     io.Writer
	errOut  io.Writer
	isTTY   bool
}

// NewSession constructs a query session reading lines from in and writing
// prompts/results to out and errors to errOut. isTTY controls whether the
// "Query? " prompt is printed before each read.
func NewSession(idx *index.Index, pageDir string, in io.Reader, out, errOut io.Writer, isTTY bool) *Session {
	return &Session{
		idx:     idx,
		pageDir: pageDir,
		in:      bufio.NewScanner(in),
		out:     out,
		errOut:  errOut,
		isTTY:   isTTY,
	}
}

// Run processes queries until EOF.
func (s *Session) Run() {
	for {
		if s.isTTY {
			fmt.Fprint(s.out, "Query? ")
		}
		if !s.in.Scan() {
			return
		}
		s.respond(s.in.Text())
	}
}

func (s *Session) respond(line string) {
	tokens, nonEmpty, err := Tokenize(line)
	if err != nil {
		fmt.Fprintf(s.errOut, "Error: %v.\n", err)
		fmt.Fprintln(s.out, separator)
		return
	}
	if !nonEmpty {
		fmt.Fprintln(s.out, separator)
		return
	}

	if err := Validate(tokens); err != nil {
		fmt.Fprintf(s.errOut, "Error: %v.\n", err)
		fmt.Fprintln(s.out, separator)
		return
	}

	fmt.Fprintf(s.out, "Query: %s\n", tokens.String())

	scores := Evaluate(tokens, s.idx)
	ranked := Rank(scores)

	if len(ranked) == 0 {
		fmt.Fprintln(s.out, "No documents match.")
		fmt.Fprintln(s.out, separator)
		return
	}

	fmt.Fprintf(s.out, "Matches %d documents (ranked):\n", len(ranked))
	for _, r := range ranked {
		url, err := pagedir.ReadURLLine(s.pageDir, r.DocID)
		if err != nil {
			continue
		}
		fmt.Fprintf(s.out, "score\t%d doc\t%d: %s\n", r.Score, r.DocID, url)
	}
	fmt.Fprintln(s.out, separator)
}
