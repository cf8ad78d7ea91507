package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/legisearch/legisearch"
	"github.com/legisearch/legisearch/fs"
	"github.com/legisearch/legisearch/gemini"
	"github.com/legisearch/legisearch/goquery"
	lshttp "github.com/legisearch/legisearch/http"
	"github.com/legisearch/legisearch/pipeline"
	"github.com/legisearch/legisearch/search"
	lslog "github.com/legisearch/legisearch/slog"
	"github.com/legisearch/legisearch/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Run configuration. Set before calling Run().
	Config legisearch.Config

	// SQLite stores opened by Run().
	DB    *sqlite.DB
	Index *sqlite.VectorIndex

	// Overridable services for end-to-end testing. When nil, Run() wires
	// the production implementations.
	Fetcher  legisearch.Fetcher
	Embedder legisearch.Embedder
}

// NewMain returns a new instance of Main configured from the environment.
// A .env file in the working directory is loaded first, if present.
func NewMain() *Main {
	_ = godotenv.Load()
	return &Main{Config: legisearch.ConfigFromEnv()}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Index != nil {
		_ = m.Index.Close()
	}
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: m.Config,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("legisearch"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'legisearch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the record store
	m.DB = sqlite.NewDB(m.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEGISEARCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.Config.DBPath, err)
	}
	defer m.Close()

	deps.Records = sqlite.NewRecordService(m.DB)

	// The ingest and query commands need the vector index and an embedder.
	if cmd == "ingest" || cmd == "query" {
		m.Index = sqlite.NewVectorIndex(m.Config.VectorPath)
		if err := m.Index.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LEGISEARCH_VECTOR_DB to use a different index path\n")
			return fmt.Errorf("failed to open vector index at %q: %w", m.Config.VectorPath, err)
		}
		deps.Index = m.Index

		embedder := m.Embedder
		if embedder == nil {
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
				return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
			}

			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			embedder = lslog.NewLoggingEmbedder(gemini.NewEmbedder(client, m.Config.EmbedModel), slog.Default())
		}

		if cmd == "ingest" {
			fetcher := m.Fetcher
			if fetcher == nil {
				fetcher = lslog.NewLoggingFetcher(lshttp.NewFetcher(), slog.Default())
			}
			if cli.Ingest.Archive != "" {
				fetcher = fs.NewArchivingFetcher(fetcher, fs.NewArchive(cli.Ingest.Archive))
			}
			defer fetcher.Close()

			deps.Pipeline = &pipeline.Pipeline{
				Records:   deps.Records,
				Fetcher:   fetcher,
				Extractor: goquery.NewExtractor(),
				Embedder:  embedder,
				Index:     deps.Index,
				Filter:    pipeline.FilterFromConfig(m.Config),
				Delay:     m.Config.Delay,
			}
		}

		if cmd == "query" {
			deps.Searcher = &search.Searcher{
				Embedder: embedder,
				Index:    deps.Index,
				Records:  deps.Records,
			}
		}
	}

	return kongCtx.Run(deps)
}
