package sitechat

import "fmt"

// Page is the outcome of fetching one cached path. On failure Err is set
// and Text holds a readable description of the failure so the path still
// contributes content to prompts.
type Page struct {
	Path string
	URL  string
	Text string
	Err  error
}

// NewFailedPage returns a Page recording a fetch failure for path.
func NewFailedPage(path, url string, err error) *Page {
	return &Page{
		Path: path,
		URL:  url,
		Text: fmt.Sprintf("Error fetching %s: %v", path, err),
		Err:  err,
	}
}

// Cache is an immutable snapshot of page text keyed by path.
// It is built once and may be read concurrently without locking.
type Cache struct {
	pages []*Page
	index map[string]int
}

// NewCache builds a snapshot from pages. Pages keep their given order;
// a repeated path replaces the earlier entry in place.
func NewCache(pages []*Page) *Cache {
	c := &Cache{index: make(map[string]int, len(pages))}
	for _, p := range pages {
		if p == nil {
			continue
		}
		cp := *p
		if i, ok := c.index[cp.Path]; ok {
			c.pages[i] = &cp
			continue
		}
		c.index[cp.Path] = len(c.pages)
		c.pages = append(c.pages, &cp)
	}
	return c
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pages)
}

// Text returns the cached text for path.
func (c *Cache) Text(path string) (string, bool) {
	if c == nil {
		return "", false
	}
	i, ok := c.index[path]
	if !ok {
		return "", false
	}
	return c.pages[i].Text, true
}

// Pages returns copies of the cached pages in cache order.
func (c *Cache) Pages() []*Page {
	if c == nil {
		return nil
	}
	pages := make([]*Page, len(c.pages))
	for i, p := range c.pages {
		cp := *p
		pages[i] = &cp
	}
	return pages
}

// Failed returns the number of pages whose fetch failed.
func (c *Cache) Failed() int {
	if c == nil {
		return 0
	}
	var n int
	for _, p := range c.pages {
		if p.Err != nil {
			n++
		}
	}
	return n
}
