package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the engine and CLI.
type Config struct {
	// Project settings
	WorkDir string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Execution settings
	Timeout time.Duration

	// Directory names pruned during discovery
	SkipDirs []string

	// Relational store; empty DSN disables it
	MySQLDSN string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags.
type Flags struct {
	Framework string
	Pattern   string
	TimeoutMS int
	WorkDir   string
}

// New creates a new Config with defaults.
func New() *Config {
	cfg := &Config{
		WorkDir:        DefaultWorkDir,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
		Timeout:        0, // engine default applies
	}
	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)
	return cfg
}

// LoadEnv layers .env values from the working directory over the process
// environment, then reads the store settings. A missing .env file is fine.
func (c *Config) LoadEnv() {
	_ = godotenv.Load(filepath.Join(c.WorkDir, ".env"))

	if dsn := os.Getenv("TEX_MYSQL_DSN"); dsn != "" {
		c.MySQLDSN = dsn
		return
	}
	// Assemble a DSN from the individual DB_* variables when present.
	host := os.Getenv("DB_HOST")
	if host == "" {
		return
	}
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "3306"
	}
	user := os.Getenv("DB_USERNAME")
	if user == "" {
		user = "root"
	}
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_DATABASE")
	if name == "" {
		name = DefaultDatabaseName
	}
	c.MySQLDSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", user, password, host, port, name)
}

// GetWorkDir returns the working directory, using the flag if provided.
func (c *Config) GetWorkDir() string {
	if c.Flags.WorkDir != "" {
		if filepath.IsAbs(c.Flags.WorkDir) {
			return c.Flags.WorkDir
		}
		return filepath.Join(c.WorkDir, c.Flags.WorkDir)
	}
	return c.WorkDir
}

// GetTimeout returns the per-invocation timeout override, zero when unset.
func (c *Config) GetTimeout() time.Duration {
	if c.Flags.TimeoutMS > 0 {
		return time.Duration(c.Flags.TimeoutMS) * time.Millisecond
	}
	return c.Timeout
}

// GetOutputPath returns the absolute path of the results JSON file so every
// command reads and writes the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.GetWorkDir(), c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
