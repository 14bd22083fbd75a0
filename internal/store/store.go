package store

import (
	"context"
	"fmt"
)

// KV is a whole-value key-value store. Put always overwrites the previous
// value for the key.
type KV interface {
	// Get returns the value stored at key. The boolean is false when the key
	// has never been written.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error

	// Lifecycle
	Close() error
}

// Drivers understood by Open.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options selects and configures a KV backend.
type Options struct {
	Driver      string
	DBPath      string
	RedisAddr   string
	RedisPrefix string
}

// Open creates the KV backend named by opts.Driver.
func Open(opts Options) (KV, error) {
	switch opts.Driver {
	case DriverSQLite, "":
		return NewSQLiteStore(opts.DBPath)
	case DriverRedis:
		return NewRedisStore(opts.RedisAddr, opts.RedisPrefix)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
