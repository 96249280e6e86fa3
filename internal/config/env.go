// Package config provides centralized configuration for the TutorFind CLI.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// TFEnv holds all TutorFind environment variables.
type TFEnv struct {
	// APIURL is the backend origin every request path is resolved against (TF_API_URL)
	APIURL string `env:"TF_API_URL" envDefault:"http://localhost:8080"`

	// Home overrides the default ~/.tutorfind directory (TF_HOME)
	Home string `env:"TF_HOME"`

	// Pretty enables colored terminal output (TF_PRETTY)
	Pretty bool `env:"TF_PRETTY" envDefault:"true"`

	// Debug enables debug-level logging (TF_DEBUG)
	Debug bool `env:"TF_DEBUG"`
}

var (
	environ *TFEnv
	envOnce sync.Once
)

// Env returns the singleton environment configuration.
// Thread-safe, loads once on first call. Values from <home>/.env are loaded
// first so shell variables still win.
func Env() *TFEnv {
	envOnce.Do(func() {
		_ = godotenv.Load(GetPaths().EnvFile)
		environ = &TFEnv{}
		if err := env.Parse(environ); err != nil {
			environ = &TFEnv{APIURL: "http://localhost:8080", Pretty: true}
		}
	})
	return environ
}

// ResetEnv resets the cached environment (for testing).
func ResetEnv() {
	envOnce = sync.Once{}
	environ = nil
	pathsOnce = sync.Once{}
	paths = nil
}

// Paths holds standard TutorFind directory paths.
type Paths struct {
	// Home is the TutorFind home directory (~/.tutorfind)
	Home string

	// Data is the data directory (~/.tutorfind/data)
	Data string

	// AuthFile is the persisted session file (~/.tutorfind/tf_auth.json)
	AuthFile string

	// HistoryDB is the local operation history database (~/.tutorfind/data/history.db)
	HistoryDB string

	// EnvFile is the .env file path (~/.tutorfind/.env)
	EnvFile string
}

var (
	paths     *Paths
	pathsOnce sync.Once
)

// GetPaths returns the singleton paths configuration.
func GetPaths() *Paths {
	pathsOnce.Do(func() {
		tfHome := os.Getenv("TF_HOME")
		if tfHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				home = "."
			}
			tfHome = filepath.Join(home, ".tutorfind")
		}

		paths = &Paths{
			Home:      tfHome,
			Data:      filepath.Join(tfHome, "data"),
			AuthFile:  filepath.Join(tfHome, "tf_auth.json"),
			HistoryDB: filepath.Join(tfHome, "data", "history.db"),
			EnvFile:   filepath.Join(tfHome, ".env"),
		}
	})
	return paths
}

// Path returns a path under the TutorFind home directory.
func Path(parts ...string) string {
	p := GetPaths()
	allParts := append([]string{p.Home}, parts...)
	return filepath.Join(allParts...)
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
