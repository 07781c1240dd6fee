// Copyright 2025 Provex Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/provex/ragstore"
	"github.com/provex/ragstore/config"
	"github.com/provex/ragstore/core"
	"github.com/provex/ragstore/engine"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "ragstore",
		Usage: "Multi-tenant semantic retrieval store for product documentation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Path to the store data directory",
			},
			&cli.StringFlag{
				Name:  "variant",
				Usage: "Embedding backend (local, remote)",
			},
			&cli.StringFlag{
				Name:  "model",
				Usage: "Embedding model identifier",
			},
			&cli.StringFlag{
				Name:  "host",
				Usage: "Remote embedding service host URL",
			},
			&cli.StringFlag{
				Name:  "api-key",
				Usage: "Remote embedding service API key",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Fail operations on remote embedding errors instead of degrading to zero vectors",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest a text file as chunks of one document",
				ArgsUsage: "<file>",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "document-id",
						Usage:    "Document ID the chunks belong to",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "tenant",
						Usage: "Tenant partition to ingest into",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Document title stored in chunk metadata",
					},
					&cli.StringFlag{
						Name:  "source-type",
						Usage: "Document source type stored in chunk metadata",
						Value: "document",
					},
					&cli.BoolFlag{
						Name:  "enrich",
						Usage: "Enrich chunk content with detected technical categories before embedding",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Query a tenant's chunks",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "tenant",
						Usage: "Tenant partition to query",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Maximum number of results",
						Value: engine.DefaultTopK,
					},
					&cli.StringFlag{
						Name:  "section-type",
						Usage: "Section family to bias retrieval toward (e.g. \"Caractéristiques techniques\")",
					},
					&cli.StringSliceFlag{
						Name:  "filter",
						Usage: "Exact-match metadata filter as key=value (repeatable)",
					},
					&cli.StringFlag{
						Name:  "product-name",
						Usage: "Product name appended to the enriched query",
					},
					&cli.StringFlag{
						Name:  "product-category",
						Usage: "Product category appended to the enriched query",
					},
				},
			},
			{
				Name:      "delete",
				Usage:     "Delete every chunk of a document, across all tenants",
				ArgsUsage: "<document-id>",
				Action:    deleteCommand,
			},
			{
				Name:   "migrate",
				Usage:  "Migrate chunks from a predecessor JSON-file store",
				Action: migrateCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "legacy-dir",
						Usage:    "Path to the legacy store's data directory",
						Required: true,
					},
				},
			},
			{
				Name:   "summary",
				Usage:  "Show what a tenant currently holds",
				Action: summaryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "tenant",
						Usage: "Tenant partition to summarize",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// settingsFromFlags builds store settings from the environment, then
// lets command-line flags override.
func settingsFromFlags(c *cli.Context) *config.Settings {
	settings := config.FromEnv()
	if v := c.String("data-dir"); v != "" {
		settings.DataDir = v
	}
	if v := c.String("variant"); v != "" {
		settings.Variant = config.Variant(v)
	}
	if v := c.String("model"); v != "" {
		settings.Model = v
	}
	if v := c.String("host"); v != "" {
		settings.Host = v
	}
	if v := c.String("api-key"); v != "" {
		settings.APIKey = v
	}
	if c.Bool("strict") {
		settings.Strict = true
	}
	return settings
}

func openStore(c *cli.Context, opts ...ragstore.StoreOption) (*ragstore.Store, error) {
	store, err := ragstore.Open(context.Background(), settingsFromFlags(c), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return store, nil
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var storeOpts []ragstore.StoreOption
	if c.Bool("enrich") {
		storeOpts = append(storeOpts, ragstore.WithEngineOptions(engine.WithStorageEnrichment(true)))
	}

	store, err := openStore(c, storeOpts...)
	if err != nil {
		return err
	}
	defer store.Close()

	documentID := c.String("document-id")
	metadata := map[string]string{
		"source_type": c.String("source-type"),
	}
	if title := c.String("title"); title != "" {
		metadata["title"] = title
	}

	ingested := 0
	for _, paragraph := range splitParagraphs(string(data)) {
		chunk := &core.Chunk{
			ChunkID:    core.ChunkIDFromContent(documentID + "\n" + paragraph),
			DocumentID: documentID,
			Content:    paragraph,
			Metadata:   metadata,
			TenantID:   c.String("tenant"),
		}
		if err := store.Engine().AddChunk(context.Background(), chunk); err != nil {
			return fmt.Errorf("failed to ingest chunk %s: %w", chunk.ChunkID, err)
		}
		ingested++
	}

	fmt.Printf("Ingested %d chunks for document %s\n", ingested, documentID)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one query argument")
	}

	filters, err := parseFilters(c.StringSlice("filter"))
	if err != nil {
		return err
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := &engine.QueryOptions{
		TenantID:    c.String("tenant"),
		TopK:        c.Int("top-k"),
		Filters:     filters,
		SectionType: c.String("section-type"),
	}
	if name := c.String("product-name"); name != "" || c.String("product-category") != "" {
		opts.Product = &core.ProductContext{
			Name:     name,
			Category: c.String("product-category"),
		}
	}

	result, err := store.Engine().Query(context.Background(), c.Args().First(), opts)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if len(result.Chunks) == 0 {
		fmt.Println("No results.")
		return nil
	}

	fmt.Printf("Enriched query: %s\n\n", result.Query.EnrichedQuery)
	for i, scored := range result.Chunks {
		fmt.Printf("%d. [%.2f] %s (document %s)\n", i+1, scored.Score, scored.Chunk.ChunkID, scored.Chunk.DocumentID)
		fmt.Printf("   %s\n", firstLine(scored.Chunk.Content))
	}
	return nil
}

func deleteCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one document-id argument")
	}

	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	deleted, err := store.Engine().DeleteDocument(context.Background(), c.Args().First())
	if err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	if !deleted {
		fmt.Printf("Document %s not found, nothing deleted\n", c.Args().First())
		return nil
	}
	fmt.Printf("Document %s deleted\n", c.Args().First())
	return nil
}

func migrateCommand(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	migrated, err := store.MigrateFromLegacy(context.Background(), c.String("legacy-dir"), os.Stderr)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Printf("Migrated %d chunks\n", migrated)
	return nil
}

func summaryCommand(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Engine().TenantSummary(context.Background(), c.String("tenant"))
	if err != nil {
		return fmt.Errorf("summary failed: %w", err)
	}

	fmt.Printf("Tenant:    %s\n", summary.TenantID)
	fmt.Printf("Documents: %d\n", summary.DocumentCount)
	for sourceType, count := range summary.DocumentTypes {
		fmt.Printf("  %s: %d\n", sourceType, count)
	}
	for _, doc := range summary.Documents {
		fmt.Printf("- %s (%s, %d chunks): %s\n", doc.DocumentID, doc.SourceType, doc.ChunkCount, doc.Title)
	}
	return nil
}

// splitParagraphs cuts text into blank-line separated chunks,
// dropping empty ones.
func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, part := range strings.Split(text, "\n\n") {
		part = strings.TrimSpace(part)
		if part != "" {
			paragraphs = append(paragraphs, part)
		}
	}
	return paragraphs
}

func parseFilters(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", pair)
		}
		filters[key] = value
	}
	return filters, nil
}

func firstLine(text string) string {
	if line, _, ok := strings.Cut(text, "\n"); ok {
		return line
	}
	return text
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
