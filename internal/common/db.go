package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const DefaultDatabaseURL = "sqlite:///./data/blog.db"

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"

	dialectSQLite   = "sqlite3"
	dialectPostgres = "postgres"
)

var ErrUnsupportedDatabaseURL = errors.New("unsupported database url")

// DSN is a parsed DATABASE_URL: the database/sql driver to open, the
// goqu dialect to build statements with, and the driver specific source.
type DSN struct {
	Driver  string
	Dialect string
	Source  string
	// Path is the on-disk location for file backed SQLite databases.
	Path string
}

// InMemory reports whether the DSN points at a private SQLite memory database.
func (d DSN) InMemory() bool {
	return d.Driver == driverSQLite && d.Path == ""
}

// ParseDSN understands the sqlite:/// and postgres:// URL forms.
// "sqlite:///./data/blog.db" is a relative file, "sqlite:////var/blog.db"
// an absolute one, and "sqlite://" or "sqlite:///:memory:" memory.
func ParseDSN(url string) (DSN, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DSN{Driver: driverPostgres, Dialect: dialectPostgres, Source: url}, nil
	case strings.HasPrefix(url, "sqlite://"):
		path := strings.TrimPrefix(url, "sqlite://")
		path = strings.TrimPrefix(path, "/")
		if path == "" || path == ":memory:" {
			return DSN{Driver: driverSQLite, Dialect: dialectSQLite, Source: ":memory:"}, nil
		}
		return DSN{
			Driver:  driverSQLite,
			Dialect: dialectSQLite,
			Source:  path + "?_pragma=busy_timeout(5000)",
			Path:    path,
		}, nil
	default:
		return DSN{}, fmt.Errorf("%w: %q", ErrUnsupportedDatabaseURL, url)
	}
}

type StoreConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
	// AutoMigrate creates the schema when it does not exist yet.
	AutoMigrate bool
}

// Store owns the connection pool. It is created once at startup and
// handed to everything that needs the database.
type Store struct {
	db  *sql.DB
	gq  *goqu.Database
	dsn DSN
}

// NewStore opens the database described by cfg.URL and verifies it is reachable.
func NewStore(ctx context.Context, cfg StoreConfig) (*Store, error) {
	if cfg.URL == "" {
		cfg.URL = DefaultDatabaseURL
	}

	dsn, err := ParseDSN(cfg.URL)
	if err != nil {
		return nil, err
	}

	if dsn.Path != "" {
		if err := os.MkdirAll(filepath.Dir(dsn.Path), 0o755); err != nil {
			return nil, fmt.Errorf("could not create database directory: %w", err)
		}
	}

	db, err := connectDB(ctx, dsn, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.MaxIdleTime)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, gq: goqu.New(dsn.Dialect, db), dsn: dsn}

	if cfg.AutoMigrate {
		if err := s.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	return s, nil
}

// connectDB connects to the database and returns the connection
func connectDB(ctx context.Context, dsn DSN, maxOpenConns int, maxIdleConns int, maxIdleTime time.Duration) (*sql.DB, error) {
	db, err := sql.Open(dsn.Driver, dsn.Source)
	if err != nil {
		return nil, err
	}

	switch {
	case dsn.InMemory():
		// the database lives and dies with its connection, so exactly one
		// must stay open for the life of the pool
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxIdleTime(0)
	case dsn.Driver == driverSQLite:
		// one writer at a time; the busy timeout covers the rest
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(maxOpenConns)
		db.SetMaxIdleConns(maxIdleConns)
		db.SetConnMaxIdleTime(maxIdleTime)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// DSN describes the backing database, for diagnostics.
func (s *Store) DSN() DSN {
	return s.dsn
}

// DB exposes the underlying pool, mostly for tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
