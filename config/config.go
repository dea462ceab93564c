// Package config loads process settings from the environment (optionally
// seeded from a .env file) and validates one command-line request.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/solver"
)

// ErrInvalidConfig is wrapped by every configuration and argument error.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Store backends.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config holds the process settings.
type Config struct {
	LogLevel  logrus.Level  // LOG_LEVEL
	Delay     time.Duration // MAZE_DELAY_MS, pause between animation steps
	Algorithm string        // MAZE_ALGORITHM, default generator
	Solver    string        // MAZE_SOLVER, default solver for the HTTP API
	HTTPAddr  string        // HTTP_ADDR
	GinMode   string        // GIN_MODE
	Store     string        // MAZE_STORE: memory, redis or mongo
	RedisAddr string        // REDIS_ADDR
	RedisTTL  time.Duration // REDIS_TTL_SECONDS, 0 keeps records forever
	MongoURI  string        // MONGO_URI
	MongoDB   string        // MONGO_DB
	MaxCells  int           // MAZE_MAX_CELLS, upper bound on rows·columns
	JWTSecret string        // JWT_SECRET, empty leaves write routes open
	JWTIssuer string        // JWT_ISSUER
}

// Defaults.
const (
	DefaultDelay    = 25 * time.Millisecond
	DefaultHTTPAddr = ":8080"
	DefaultMaxCells = 250_000
)

// Load reads the given .env files (".env" when none are named) into the
// environment and builds a Config from it. Missing .env files are ignored;
// variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: loading %s: %v", ErrInvalidConfig, f, err)
		}
	}

	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a variable lookup such as os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	env := envReader{lookup: lookup}
	cfg := &Config{
		Delay:     env.millis("MAZE_DELAY_MS", DefaultDelay),
		Algorithm: env.str("MAZE_ALGORITHM", generator.DepthFirst.String()),
		Solver:    env.str("MAZE_SOLVER", solver.AStar.String()),
		HTTPAddr:  env.str("HTTP_ADDR", DefaultHTTPAddr),
		GinMode:   env.str("GIN_MODE", "release"),
		Store:     strings.ToLower(env.str("MAZE_STORE", BackendMemory)),
		RedisAddr: env.str("REDIS_ADDR", "localhost:6379"),
		RedisTTL:  time.Duration(env.integer("REDIS_TTL_SECONDS", 0)) * time.Second,
		MongoURI:  env.str("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:   env.str("MONGO_DB", "labyrinth"),
		MaxCells:  env.integer("MAZE_MAX_CELLS", DefaultMaxCells),
		JWTSecret: env.str("JWT_SECRET", ""),
		JWTIssuer: env.str("JWT_ISSUER", "labyrinth"),
	}
	level, err := logrus.ParseLevel(env.str("LOG_LEVEL", "info"))
	if err != nil {
		env.fail(fmt.Errorf("LOG_LEVEL: %v", err))
	}
	cfg.LogLevel = level
	if env.err != nil {
		return nil, env.err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("%w: MAZE_DELAY_MS must not be negative", ErrInvalidConfig)
	}
	if c.MaxCells < 1 {
		return fmt.Errorf("%w: MAZE_MAX_CELLS must be at least 1, got %d", ErrInvalidConfig, c.MaxCells)
	}
	if c.RedisTTL < 0 {
		return fmt.Errorf("%w: REDIS_TTL_SECONDS must not be negative", ErrInvalidConfig)
	}
	if _, err := generator.ParseKind(c.Algorithm); err != nil {
		return fmt.Errorf("%w: MAZE_ALGORITHM: %v", ErrInvalidConfig, err)
	}
	if _, err := solver.ParseKind(c.Solver); err != nil {
		return fmt.Errorf("%w: MAZE_SOLVER: %v", ErrInvalidConfig, err)
	}
	switch c.Store {
	case BackendMemory, BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("%w: MAZE_STORE must be memory, redis or mongo, got %q", ErrInvalidConfig, c.Store)
	}

	return nil
}

// envReader looks variables up and keeps the first parse error.
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) fail(err error) {
	if e.err == nil {
		e.err = fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
}

func (e *envReader) str(key, def string) string {
	if v, ok := e.lookup(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}

	return def
}

func (e *envReader) integer(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		e.fail(fmt.Errorf("%s must be an integer: %v", key, err))
		return def
	}

	return n
}

func (e *envReader) millis(key string, def time.Duration) time.Duration {
	if _, ok := e.lookup(key); !ok {
		return def
	}

	return time.Duration(e.integer(key, int(def/time.Millisecond))) * time.Millisecond
}
