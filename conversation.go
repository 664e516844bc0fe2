package sitechat

import "context"

// Turn is one prior message in the chat widget's conversation.
type Turn struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

// Request is a visitor question with the conversation that led to it.
type Request struct {
	Query   string `json:"query"`
	History []Turn `json:"history"`
}

// Result is the outcome of answering a Request. Exactly one of Response
// or Err is meaningful: Err is nil on success.
type Result struct {
	Response string
	Err      error
}

// OK reports whether the request was answered.
func (r Result) OK() bool {
	return r.Err == nil
}

// Assistant answers visitor questions.
type Assistant interface {
	// Answer never fails out of band: every failure is reported in Result.Err.
	// Returns EINVALID if the query is empty.
	Answer(ctx context.Context, req Request) Result
}
