// Package pagedir persists and reloads crawled pages in a page directory.
//
// A page directory is a plain filesystem directory containing a sentinel
// file named .crawler and, for each persisted page, a regular file whose
// name is the ASCII decimal docID (dense, starting at 1, no gaps).
package pagedir

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const sentinelName = ".crawler"

// Page is a single crawled document: its URL, crawl depth, and raw HTML.
type Page struct {
	URL   string
	Depth int
	HTML  string
}

// Init creates (or overwrites) the sentinel file inside dir, marking it as
// crawler-produced. It reports false if the sentinel cannot be opened for
// writing.
func Init(dir string) bool {
	f, err := os.Create(filepath.Join(dir, sentinelName))
	if err != nil {
		return false
	}
	defer f.Close()
	return true
}

// Save writes page under dir/<docID>. The file holds exactly: the URL on
// line 1, the depth as ASCII decimal on line 2, and the raw HTML verbatim
// starting on line 3 with no trailing newline appended.
func Save(page Page, dir string, docID int) error {
	path := filepath.Join(dir, strconv.Itoa(docID))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pagedir: opening %s for write: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%s\n%d\n%s", page.URL, page.Depth, page.HTML)
	return w.Flush()
}

// Validate reports whether dir looks like a crawler-produced page
// directory: both dir/.crawler and dir/1 must be readable. It does not
// guarantee every other file in dir originated from a crawl.
func Validate(dir string) bool {
	if !readable(filepath.Join(dir, sentinelName)) {
		return false
	}
	return readable(filepath.Join(dir, "1"))
}

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// Load reads dir/<docID> back into a Page. The second return value is
// false if the page file does not exist or cannot be read; callers must
// not treat that as a hard error — it is the sweep-termination signal for
// the indexer driver.
func Load(dir string, docID int) (Page, bool) {
	path := filepath.Join(dir, strconv.Itoa(docID))
	f, err := os.Open(path)
	if err != nil {
		return Page{}, false
	}
	defer f.Close()

	r := bufio.NewReader(f)
	url, err := r.ReadString('\n')
	if err != nil {
		return Page{}, false
	}
	url = strings.TrimSuffix(url, "\n")

	depthLine, err := r.ReadString('\n')
	if err != nil {
		return Page{}, false
	}
	depth, err := strconv.ParseInt(strings.TrimSuffix(depthLine, "\n"), 10, 64)
	if err != nil {
		return Page{}, false
	}

	html, err := io.ReadAll(r)
	if err != nil {
		return Page{}, false
	}

	return Page{URL: url, Depth: int(depth), HTML: string(html)}, true
}

// Open returns a handle to dir/<docID> opened with the given flag/perm,
// for callers (such as the ranker) that only need to read a single line
// from the file rather than the whole Page.
func Open(dir string, docID int, flag int, perm os.FileMode) (*os.File, error) {
	path := filepath.Join(dir, strconv.Itoa(docID))
	return os.OpenFile(path, flag, perm)
}

// ReadURLLine reads just the first line (the URL) of a page file, as used
// by the ranker when printing result lines.
func ReadURLLine(dir string, docID int) (string, error) {
	f, err := Open(dir, docID, os.O_RDONLY, 0)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
