// Package crawl builds the page cache the assistant answers from.
// It coordinates fetching and text extraction for a fixed list of paths.
package crawl

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/sitechat"
	"golang.org/x/sync/errgroup"
)

// Builder fetches a fixed set of paths and turns them into a cache snapshot.
type Builder struct {
	Fetcher   sitechat.Fetcher
	Extractor sitechat.TextExtractor

	// Limiter paces fetches when set.
	Limiter sitechat.Limiter
}

// Build fetches every path under baseURL and returns one cache entry per
// path. A failing path is recorded as a failed page and never aborts the
// others, so Build itself cannot fail. Paths are fetched concurrently;
// the cache keeps the order of paths.
func (b *Builder) Build(ctx context.Context, baseURL string, paths []string) *sitechat.Cache {
	pages := make([]*sitechat.Page, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			pages[i] = b.buildPage(ctx, baseURL, path)
			return nil
		})
	}
	_ = g.Wait()

	return sitechat.NewCache(pages)
}

func (b *Builder) buildPage(ctx context.Context, baseURL, path string) *sitechat.Page {
	pageURL := JoinURL(baseURL, path)

	if b.Limiter != nil {
		if err := b.Limiter.Wait(ctx, domainOf(pageURL)); err != nil {
			return sitechat.NewFailedPage(path, pageURL, err)
		}
	}

	html, err := b.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return sitechat.NewFailedPage(path, pageURL, err)
	}

	text, err := b.Extractor.ExtractText(html)
	if err != nil {
		return sitechat.NewFailedPage(path, pageURL, err)
	}

	return &sitechat.Page{Path: path, URL: pageURL, Text: text}
}

// JoinURL appends path to baseURL with exactly one slash between them.
func JoinURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}
