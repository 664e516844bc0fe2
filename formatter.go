package sitechat

import "strings"

// FormatHistory renders prior turns one per line, labelled by speaker,
// in the order given. Every line ends with a newline.
func FormatHistory(history []Turn) string {
	var sb strings.Builder
	for _, turn := range history {
		speaker := "Assistant"
		if turn.IsUser {
			speaker = "User"
		}
		sb.WriteString(speaker + ": " + turn.Text + "\n")
	}
	return sb.String()
}

// FormatPages renders every cached page as a labelled block for LLM context.
// Blocks are separated by blank lines.
func FormatPages(cache *Cache) string {
	pages := cache.Pages()
	if len(pages) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		parts = append(parts, "Page: "+page.Path+"\nContent: "+page.Text)
	}

	return strings.Join(parts, "\n\n")
}
