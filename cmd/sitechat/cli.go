package main

import "time"

// Provider names accepted by --provider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// CLI defines the command-line interface structure for Kong.
// Every flag can also be supplied through its environment variable.
type CLI struct {
	APIKey       string        `name:"api-key" env:"GEMINI_API_KEY" help:"API key for the completion provider"`
	Provider     string        `enum:"openai,gemini" default:"openai" env:"SITECHAT_PROVIDER" help:"Completion provider (${enum})"`
	Model        string        `default:"${default_model}" env:"SITECHAT_MODEL" help:"Model identifier"`
	BaseEndpoint string        `name:"base-endpoint" default:"${default_base_endpoint}" env:"SITECHAT_BASE_ENDPOINT" help:"OpenAI-compatible base endpoint"`
	Addr         string        `default:"127.0.0.1:8000" env:"SITECHAT_ADDR" help:"Address to listen on"`
	FetchTimeout time.Duration `name:"fetch-timeout" default:"10s" help:"Timeout for each page fetch at startup"`
	CrawlRPS     float64       `name:"crawl-rps" default:"0" help:"Page fetches per second at startup (0 for unlimited)"`
	CountTokens  bool          `name:"count-tokens" help:"Log the token size of the cached content at startup"`
	LogJSON      bool          `name:"log-json" env:"SITECHAT_LOG_JSON" help:"Write logs as JSON"`
	Debug        bool          `env:"SITECHAT_DEBUG" help:"Enable debug logging"`
}
