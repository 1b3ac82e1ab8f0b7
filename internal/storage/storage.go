// Package storage provides the keyed-blob persistence boundary. Every
// collection is read whole and written whole; there are no partial writes
// and no cross-key atomicity.
package storage

import (
	"context"
	"errors"
	"fmt"

	"soulforge/internal/config"
)

// Collection keys. Existing snapshot exports use these names, so they stay
// fixed for interchange.
const (
	KeyPersonas = "soulforge_data"
	KeyGlobal   = "soulforge_global"
	KeyAbout    = "soulforge_about"
	KeySession  = "soulforge_user"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a synchronous key-value byte store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open selects and opens a backend from configuration.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case "sqlite", "postgres":
		return OpenGorm(cfg.StorageDriver, cfg.StorageDSN)
	case "redis":
		return OpenRedis(cfg.RedisURL)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.StorageDriver)
	}
}
