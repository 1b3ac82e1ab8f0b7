// Package bootstrap wires storage and the content store for entry points.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"

	"soulforge/internal/auth"
	"soulforge/internal/config"
	"soulforge/internal/content"
	"soulforge/internal/seed"
	"soulforge/internal/storage"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDefaults writes the compiled-in dataset into an empty store
	// before loading, so a first run starts from a persisted snapshot
	// instead of in-memory defaults.
	SeedDefaults bool
}

// InitRuntime opens the blob store and loads the content store from it.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (storage.Store, *content.ContentStore, error) {
	st, err := storage.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("storage connection failed: %w", err)
	}

	if opts.SeedDefaults {
		if err := seedIfEmpty(ctx, st); err != nil {
			_ = st.Close()
			return nil, nil, err
		}
	}

	creds := auth.DefaultCredentials()
	creds.Override("Sage", cfg.AdminPassword)
	creds.Override("Showcase", cfg.ShowoffPassword)

	cs := content.New(st, creds)
	cs.Load(ctx)
	return st, cs, nil
}

func seedIfEmpty(ctx context.Context, st storage.Store) error {
	_, err := st.Get(ctx, storage.KeyPersonas)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to probe storage: %w", err)
	}
	log.Println("empty store, seeding default content")
	return seed.NewSeeder(st).Defaults(ctx)
}
