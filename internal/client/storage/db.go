package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/postview/internal/client/migrations"
	"github.com/dmitrijs2005/postview/internal/client/repositories/kv"
	"github.com/dmitrijs2005/postview/internal/filex"

	_ "modernc.org/sqlite"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
	BackendMemory Backend = "memory"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Options selects and configures a backend.
type Options struct {
	Backend    Backend
	SQLitePath string
	Redis      kv.RedisConfig
}

// Store is an opened backend. Close releases the underlying connection.
type Store interface {
	kv.Repository
	kv.Batcher
	Close() error
}

type sqliteStore struct {
	*kv.SQLiteRepository
	db *sql.DB
}

func (s *sqliteStore) Close() error { return s.db.Close() }

type memoryStore struct {
	*kv.MemoryRepository
}

func (memoryStore) Close() error { return nil }

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// Open returns the backend described by opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		if isFilePath(opts.SQLitePath) {
			if _, err := filex.EnsureParentDir(opts.SQLitePath); err != nil {
				return nil, err
			}
		}
		db, err := InitDatabase(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &sqliteStore{SQLiteRepository: kv.NewSQLiteRepository(db), db: db}, nil

	case BackendRedis:
		client, err := kv.NewRedisClient(ctx, opts.Redis)
		if err != nil {
			return nil, err
		}
		return kv.NewRedisRepository(client), nil

	case BackendMemory:
		return memoryStore{kv.NewMemoryRepository()}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}

// isFilePath reports whether dsn names a plain file rather than an in-memory
// database or a file: URI.
func isFilePath(dsn string) bool {
	return dsn != "" && dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}
