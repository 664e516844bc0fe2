package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitechat"
	"github.com/fwojciec/sitechat/agent"
	"github.com/fwojciec/sitechat/crawl"
	"github.com/fwojciec/sitechat/fiber"
	"github.com/fwojciec/sitechat/gemini"
	"github.com/fwojciec/sitechat/goquery"
	schttp "github.com/fwojciec/sitechat/http"
	"github.com/fwojciec/sitechat/openai"
	scslog "github.com/fwojciec/sitechat/slog"
	"google.golang.org/genai"
)

// SiteURL is the website whose pages are cached.
const SiteURL = "https://zonixo.com/"

// SitePaths are the pages cached at startup.
var SitePaths = []string{"/", "/about", "/services", "/blogs", "/careers", "/contact"}

// AllowOrigins are the browser origins allowed to call the API.
var AllowOrigins = []string{"https://zonixo.com", "https://ai-assistant-8x6e.onrender.com"}

// errHelp is returned by Run when only help was requested.
var errHelp = errors.New("help requested")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	<-ctx.Done()

	if err := m.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Site to cache. Set before calling Run().
	SiteURL string
	Paths   []string

	// Origins allowed through CORS. Set before calling Run().
	AllowOrigins []string

	// Completer overrides the configured provider when set.
	Completer sitechat.Completer

	// TokenCounter overrides the local Gemini tokenizer when set.
	TokenCounter sitechat.TokenCounter

	// Populated by Run.
	Logger *slog.Logger
	Cache  *sitechat.Cache
	Server *fiber.Server
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		SiteURL:      SiteURL,
		Paths:        SitePaths,
		AllowOrigins: AllowOrigins,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Server != nil {
		return m.Server.Close()
	}
	return nil
}

// Run parses the configuration, caches the site and starts serving.
// It returns once the server is listening; call Close to stop it.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitechat"),
		kong.Description("Answer website visitor questions from the site's own pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"default_model":         openai.DefaultModel,
			"default_base_endpoint": openai.DefaultBaseURL,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "help" || arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return errHelp
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.APIKey == "" && m.Completer == nil {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	m.Logger = scslog.NewLogger(
		scslog.WithWriter(stderr),
		scslog.WithJSON(cli.LogJSON),
		scslog.WithDebug(cli.Debug),
	)

	m.Cache = m.buildCache(ctx, cli)
	m.Logger.Info("site cached",
		"url", m.SiteURL,
		"pages", m.Cache.Len(),
		"failed", m.Cache.Failed(),
	)
	if cli.CountTokens {
		m.logTokens(ctx, cli.Model)
	}

	completer := m.Completer
	if completer == nil {
		if completer, err = newCompleter(ctx, cli); err != nil {
			return err
		}
	}
	completer = scslog.NewLoggingCompleter(completer, m.Logger)

	m.Server = fiber.NewServer(fiber.Config{
		Addr:         cli.Addr,
		AllowOrigins: m.AllowOrigins,
	}, agent.New(completer, m.Cache), m.Cache, m.Logger)

	return m.Server.Open()
}

// buildCache fetches the site once with a fetcher scoped to the build.
func (m *Main) buildCache(ctx context.Context, cli *CLI) *sitechat.Cache {
	fetcher := scslog.NewLoggingFetcher(
		schttp.NewFetcher(schttp.WithTimeout(cli.FetchTimeout)),
		m.Logger,
	)
	defer fetcher.Close()

	builder := &crawl.Builder{
		Fetcher:   fetcher,
		Extractor: goquery.NewTextExtractor(),
	}
	if cli.CrawlRPS > 0 {
		builder.Limiter = crawl.NewDomainLimiter(cli.CrawlRPS)
	}

	return builder.Build(ctx, m.SiteURL, m.Paths)
}

// logTokens reports the prompt size of the cached content. Failures are
// logged and otherwise ignored.
func (m *Main) logTokens(ctx context.Context, model string) {
	counter := m.TokenCounter
	if counter == nil {
		tc, err := gemini.NewTokenCounter(model)
		if err != nil {
			m.Logger.Warn("token counter unavailable", "model", model, "err", err)
			return
		}
		counter = tc
	}

	tokens, err := counter.CountTokens(ctx, sitechat.FormatPages(m.Cache))
	if err != nil {
		m.Logger.Warn("token count failed", "err", err)
		return
	}
	m.Logger.Info("cached content size", "model", model, "tokens", tokens)
}

func newCompleter(ctx context.Context, cli *CLI) (sitechat.Completer, error) {
	switch cli.Provider {
	case ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, cli.Model), nil
	default:
		return openai.NewCompleter(cli.APIKey,
			openai.WithBaseURL(cli.BaseEndpoint),
			openai.WithModel(cli.Model),
		), nil
	}
}
