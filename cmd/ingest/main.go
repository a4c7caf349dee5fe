// Command ingest rebuilds the knowledge-base vector index from the data
// directory and writes it to disk together with the compressed archive used
// for distribution. It is an offline batch job: any failure aborts the run
// without writing an index.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SHRA1M/Rag-chatbot/internal/chunker"
	"github.com/SHRA1M/Rag-chatbot/internal/config"
	"github.com/SHRA1M/Rag-chatbot/internal/embedding"
	"github.com/SHRA1M/Rag-chatbot/internal/index"
	"github.com/SHRA1M/Rag-chatbot/internal/parser"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	configPath := flag.String("config", configFilePath, "Path to the config file")
	dataDir := flag.String("data", "", "Override the knowledge-base data directory")
	indexPath := flag.String("index", "", "Override the index output directory")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *indexPath != "" {
		cfg.Index.Path = *indexPath
	}

	ctx := context.Background()

	log.Info().Str("dir", cfg.DataDir).Msg("Scanning knowledge base")
	docs, err := parser.LoadDir(cfg.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("No index written")
	}

	chunks, err := chunker.Split(docs, chunker.DefaultMaxSize, chunker.DefaultOverlap)
	if err != nil {
		log.Fatal().Err(err).Msg("Error splitting documents")
	}
	log.Info().Int("documents", len(docs)).Int("chunks", len(chunks)).Msg("Split documents")

	embedder, err := embedding.New(&cfg.Embedding)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}

	vectors, err := embedding.EmbedChunks(ctx, embedder, chunks)
	if err != nil {
		log.Fatal().Err(err).Msg("Error generating embeddings, no index written")
	}

	ix, err := index.Build(cfg.Index.Path, cfg.Index.Collection)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating index")
	}

	entries := make([]index.Entry, len(chunks))
	for i := range chunks {
		entries[i] = index.Entry{Chunk: chunks[i], Vector: vectors[i]}
	}
	if err := ix.Add(ctx, entries); err != nil {
		log.Fatal().Err(err).Msg("Error storing chunks")
	}

	if err := ix.Archive(cfg.Index.Archive); err != nil {
		log.Fatal().Err(err).Msg("Error writing index archive")
	}

	log.Info().
		Int("documents", len(docs)).
		Int("chunks", len(chunks)).
		Str("index", cfg.Index.Path).
		Str("archive", cfg.Index.Archive).
		Msg("Knowledge base updated")
}
