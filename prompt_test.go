package sitechat_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/sitechat"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	cache := sitechat.NewCache([]*sitechat.Page{
		{Path: "/", Text: "Home text"},
		{Path: "/about", Text: "About text"},
	})

	t.Run("contains every page and the query", func(t *testing.T) {
		t.Parallel()

		prompt := sitechat.BuildPrompt(sitechat.Instructions, nil, cache, "What is this site about?")

		assert.Contains(t, prompt, "Home text")
		assert.Contains(t, prompt, "About text")
		assert.Contains(t, prompt, "What is this site about?")
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		history := []sitechat.Turn{{Text: "hi", IsUser: true}, {Text: "Hello!"}}

		first := sitechat.BuildPrompt(sitechat.Instructions, history, cache, "Who are you?")
		second := sitechat.BuildPrompt(sitechat.Instructions, history, cache, "Who are you?")

		assert.Equal(t, first, second)
	})

	t.Run("orders sections", func(t *testing.T) {
		t.Parallel()

		history := []sitechat.Turn{{Text: "hi", IsUser: true}}

		prompt := sitechat.BuildPrompt("INSTRUCTIONS", history, cache, "QUESTION")

		instructions := strings.Index(prompt, "INSTRUCTIONS")
		conversation := strings.Index(prompt, "Conversation so far:")
		turn := strings.Index(prompt, "User: hi")
		content := strings.Index(prompt, "Website Content:")
		page := strings.Index(prompt, "Page: /about")
		question := strings.Index(prompt, "User Question:")
		query := strings.Index(prompt, "QUESTION")

		assert.Less(t, instructions, conversation)
		assert.Less(t, conversation, turn)
		assert.Less(t, turn, content)
		assert.Less(t, content, page)
		assert.Less(t, page, question)
		assert.Less(t, question, query)
	})

	t.Run("renders exact layout", func(t *testing.T) {
		t.Parallel()

		small := sitechat.NewCache([]*sitechat.Page{{Path: "/", Text: "Home text"}})

		prompt := sitechat.BuildPrompt("Be brief.", []sitechat.Turn{{Text: "hi", IsUser: true}}, small, "Where are you?")

		expected := "Be brief.\n\nConversation so far:\nUser: hi\n\nWebsite Content:\nPage: /\nContent: Home text\n\nUser Question:\nWhere are you?\n"
		assert.Equal(t, expected, prompt)
	})
}

func TestInstructions(t *testing.T) {
	t.Parallel()

	assert.Contains(t, sitechat.Instructions, "I'm sorry, I couldn't find that information on the website.")
	assert.Contains(t, sitechat.Instructions, "LinkedIn")
}
