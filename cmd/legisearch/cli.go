package main

import (
	"context"
	"io"

	"github.com/legisearch/legisearch"
	"github.com/legisearch/legisearch/pipeline"
	"github.com/legisearch/legisearch/search"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Config   legisearch.Config
	Records  legisearch.RecordService
	Index    legisearch.VectorIndex
	Pipeline *pipeline.Pipeline
	Searcher *search.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ingest  IngestCmd  `cmd:"" help:"Fetch, clean, embed and index legislation"`
	Query   QueryCmd   `cmd:"" help:"Search indexed legislation by meaning"`
	Records RecordsCmd `cmd:"" help:"List stored legislation records"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Links   string `short:"l" help:"File with legislation URLs, one per line (defaults to a built-in list)"`
	Archive string `short:"a" help:"Directory to save fetched HTML into, for inspection" type:"path"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Text string `arg:"" help:"Query text"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	Status string `short:"s" help:"Filter by status (new, cleaned, embedded, failed_download, failed_embedding, failed_pipeline)"`
}
