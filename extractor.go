package sitechat

// TextExtractor reduces an HTML page to its visible text.
type TextExtractor interface {
	// ExtractText strips all markup and returns the words of the page
	// separated by single spaces. Script and style content is not visible
	// and must not appear in the result.
	ExtractText(html string) (string, error)
}
