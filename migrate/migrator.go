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

package migrate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/provex/ragstore/engine"
)

// Config holds configuration for a migration run.
type Config struct {
	// ReportInterval is how often to report progress (number of chunks)
	ReportInterval int

	// MaxRetries is the maximum number of attempts per chunk re-add
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Migrator re-ingests every chunk of a predecessor store through the
// engine, re-embedding under the current provider while preserving
// tenant assignments. Unreadable chunks are skipped and counted, never
// fatal: a migration run always completes and reports what it moved.
type Migrator struct {
	engine   *engine.Engine
	source   Source
	config   *Config
	progress io.Writer
	logger   *slog.Logger
}

// NewMigrator creates a new migrator.
// progress: where to write progress output (typically os.Stderr)
func NewMigrator(eng *engine.Engine, source Source, config *Config, progress io.Writer) (*Migrator, error) {
	if eng == nil {
		return nil, ErrEngineRequired
	}
	if source == nil {
		return nil, ErrSourceRequired
	}
	if config == nil {
		config = DefaultConfig()
	}
	if progress == nil {
		progress = io.Discard
	}

	return &Migrator{
		engine:   eng,
		source:   source,
		config:   config,
		progress: progress,
		logger:   slog.Default().With("component", "migrator"),
	}, nil
}

// Run executes the migration and returns the number of chunks
// successfully re-added. A chunk that cannot be resolved or re-added
// is logged and skipped; only a failure to enumerate the source aborts
// the run.
func (m *Migrator) Run(ctx context.Context) (int, error) {
	chunkIDs, err := m.source.ChunkIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("enumerating source chunks: %w", err)
	}

	total := len(chunkIDs)
	if total == 0 {
		fmt.Fprintf(m.progress, "No chunks found in source store (0 chunks)\n")
		return 0, nil
	}

	fmt.Fprintf(m.progress, "Starting migration of %d chunks\n", total)

	tracker := NewProgressTracker(m.progress, total, m.config.ReportInterval)
	tracker.Start()

	migrated := 0
	skipped := 0

	for _, chunkID := range chunkIDs {
		select {
		case <-ctx.Done():
			return migrated, ctx.Err()
		default:
		}

		chunk, err := m.source.ResolveChunk(ctx, chunkID)
		if err != nil {
			m.logger.Warn("skipping unresolvable chunk", "chunkID", chunkID, "err", err)
			skipped++
			tracker.Increment(1)
			continue
		}

		err = RetryWithBackoff(ctx, func() error {
			return m.engine.AddChunk(ctx, chunk)
		}, m.config.MaxRetries, m.config.RetryDelay)
		if err != nil {
			m.logger.Warn("skipping chunk after failed re-add",
				"chunkID", chunkID, "tenantID", chunk.TenantID, "err", err)
			skipped++
			tracker.Increment(1)
			continue
		}

		migrated++
		tracker.Increment(1)
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(m.progress, "Migration complete. Migrated %d chunks, skipped %d, in %v\n",
		migrated, skipped, elapsed.Round(time.Second))

	return migrated, nil
}
