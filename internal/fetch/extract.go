package fetch

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ExtractLinks walks the parsed document looking for <a href> targets and
// resolves each one to an absolute URL against base. Malformed hrefs are
// skipped rather than aborting the walk, matching the teacher's
// link-extraction tree-walk.
func ExtractLinks(htmlContent, base string) []string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return nil
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				ref, err := url.Parse(attr.Val)
				if err != nil {
					break
				}
				links = append(links, baseURL.ResolveReference(ref).String())
				break
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links
}

// ExtractWords returns every maximal run of ASCII letters found in the
// document's visible text, in document order, skipping the contents of
// <script> and <style> elements. The indexer driver lowercases and
// length-filters these tokens with wordnorm.Normalize.
func ExtractWords(htmlContent string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}
	doc.Find("script, style").Remove()

	text := doc.Text()

	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			current.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return words
}
