package sitechat_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFailedPage(t *testing.T) {
	t.Parallel()

	page := sitechat.NewFailedPage("/about", "https://example.com/about", errors.New("connection refused"))

	assert.Equal(t, "/about", page.Path)
	assert.Equal(t, "Error fetching /about: connection refused", page.Text)
	require.Error(t, page.Err)
}

func TestCache(t *testing.T) {
	t.Parallel()

	t.Run("keeps pages in given order", func(t *testing.T) {
		t.Parallel()

		cache := sitechat.NewCache([]*sitechat.Page{
			{Path: "/", Text: "Home text"},
			{Path: "/about", Text: "About text"},
		})

		require.Equal(t, 2, cache.Len())
		pages := cache.Pages()
		assert.Equal(t, "/", pages[0].Path)
		assert.Equal(t, "/about", pages[1].Path)
	})

	t.Run("looks up text by path", func(t *testing.T) {
		t.Parallel()

		cache := sitechat.NewCache([]*sitechat.Page{{Path: "/about", Text: "About text"}})

		text, ok := cache.Text("/about")
		assert.True(t, ok)
		assert.Equal(t, "About text", text)

		_, ok = cache.Text("/missing")
		assert.False(t, ok)
	})

	t.Run("repeated path replaces earlier entry", func(t *testing.T) {
		t.Parallel()

		cache := sitechat.NewCache([]*sitechat.Page{
			{Path: "/", Text: "old"},
			{Path: "/about", Text: "About text"},
			{Path: "/", Text: "new"},
		})

		require.Equal(t, 2, cache.Len())
		text, _ := cache.Text("/")
		assert.Equal(t, "new", text)
		assert.Equal(t, "/", cache.Pages()[0].Path)
	})

	t.Run("is not affected by mutating inputs or outputs", func(t *testing.T) {
		t.Parallel()

		page := &sitechat.Page{Path: "/", Text: "Home text"}
		cache := sitechat.NewCache([]*sitechat.Page{page})

		page.Text = "changed"
		cache.Pages()[0].Text = "changed again"

		text, _ := cache.Text("/")
		assert.Equal(t, "Home text", text)
	})

	t.Run("counts failed pages", func(t *testing.T) {
		t.Parallel()

		cache := sitechat.NewCache([]*sitechat.Page{
			{Path: "/", Text: "Home text"},
			sitechat.NewFailedPage("/blogs", "https://example.com/blogs", errors.New("HTTP 500")),
		})

		assert.Equal(t, 1, cache.Failed())
	})

	t.Run("nil cache is empty", func(t *testing.T) {
		t.Parallel()

		var cache *sitechat.Cache

		assert.Equal(t, 0, cache.Len())
		assert.Equal(t, 0, cache.Failed())
		assert.Empty(t, cache.Pages())
	})
}
