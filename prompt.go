package sitechat

import "strings"

// Instructions tell the model how to answer from the cached website text.
const Instructions = `You are an assistant that answers user questions strictly using the website content provided.

Only use the content to respond. If the answer isn't found, say:
"I'm sorry, I couldn't find that information on the website."

Keep responses brief and clear. Do not include URLs, endpoints, or elaborate lists.
If the user asks about LinkedIn or other external sites, do not provide direct links or URLs. Instead, analyze the website content and simply tell them there is a button on the website they can click to be redirected to that site.`

// BuildPrompt assembles the single prompt sent to the model: instructions,
// conversation history, website content and the question, in that order.
// The result depends only on its arguments.
func BuildPrompt(instructions string, history []Turn, cache *Cache, query string) string {
	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\nConversation so far:\n")
	sb.WriteString(FormatHistory(history))
	sb.WriteString("\nWebsite Content:\n")
	sb.WriteString(FormatPages(cache))
	sb.WriteString("\n\nUser Question:\n")
	sb.WriteString(query)
	sb.WriteString("\n")
	return sb.String()
}
