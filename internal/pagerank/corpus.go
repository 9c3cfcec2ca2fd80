// Package pagerank estimates how important each page in a small hyperlink
// corpus is, either by simulating a random surfer or by iterating the rank
// equation until it settles.
package pagerank

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Corpus maps a page name to the set of pages it links to. Crawl keeps only
// links that point at other pages inside the corpus and drops self links.
type Corpus map[string]map[string]bool

// Ranks holds one importance estimate per page. The values form a
// probability distribution over the corpus.
type Ranks map[string]float64

// Crawl reads every .html file directly inside dir and returns the link
// corpus. Subdirectories are not descended into.
func Crawl(dir string) (Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	corpus := make(Corpus)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		links, err := extractHrefs(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		delete(links, entry.Name())
		corpus[entry.Name()] = links
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("no .html pages in %s", dir)
	}

	// Only links to pages we actually crawled count.
	for _, links := range corpus {
		for target := range links {
			if _, ok := corpus[target]; !ok {
				delete(links, target)
			}
		}
	}
	return corpus, nil
}

// Pages returns the page names in sorted order.
func (c Corpus) Pages() []string {
	pages := make([]string, 0, len(c))
	for page := range c {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// extractHrefs collects the href value of every anchor element in the
// document. x/net/html tolerates tag soup, so malformed pages still yield
// whatever anchors it can recover.
func extractHrefs(r io.Reader) (map[string]bool, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	links := make(map[string]bool)
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" && attr.Val != "" {
					links[attr.Val] = true
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)
	return links, nil
}
