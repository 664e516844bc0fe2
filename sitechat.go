// Package sitechat provides a support-chat backend for a single website.
// It caches the visible text of a fixed set of pages at startup and answers
// visitor questions by relaying them, together with that text and the
// conversation so far, to a hosted LLM completion endpoint.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, fiber/).
package sitechat
