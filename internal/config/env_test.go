package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	ResetEnv()

	os.Setenv("TF_API_URL", "http://api.test:9090")
	os.Setenv("TF_DEBUG", "true")
	defer func() {
		os.Unsetenv("TF_API_URL")
		os.Unsetenv("TF_DEBUG")
		ResetEnv()
	}()

	e := Env()

	assert.Equal(t, "http://api.test:9090", e.APIURL)
	assert.True(t, e.Debug)
}

func TestEnvDefaults(t *testing.T) {
	ResetEnv()

	os.Unsetenv("TF_API_URL")
	os.Unsetenv("TF_PRETTY")
	defer ResetEnv()

	e := Env()

	assert.Equal(t, "http://localhost:8080", e.APIURL)
	assert.True(t, e.Pretty)
}

func TestEnvSingleton(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	e1 := Env()
	e2 := Env()

	assert.Same(t, e1, e2)
}

func TestGetPaths(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	p := GetPaths()

	assert.NotEmpty(t, p.Home)
	assert.Contains(t, p.Home, ".tutorfind")
	assert.Equal(t, filepath.Join(p.Home, "data"), p.Data)
	assert.Equal(t, filepath.Join(p.Home, "tf_auth.json"), p.AuthFile)
	assert.Equal(t, filepath.Join(p.Home, "data", "history.db"), p.HistoryDB)
	assert.Equal(t, filepath.Join(p.Home, ".env"), p.EnvFile)
}

func TestGetPathsHomeOverride(t *testing.T) {
	ResetEnv()

	dir := t.TempDir()
	os.Setenv("TF_HOME", dir)
	defer func() {
		os.Unsetenv("TF_HOME")
		ResetEnv()
	}()

	p := GetPaths()

	assert.Equal(t, dir, p.Home)
	assert.Equal(t, filepath.Join(dir, "tf_auth.json"), p.AuthFile)
}

func TestPath(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	result := Path("data", "history.db")

	assert.Contains(t, result, ".tutorfind")
	assert.Contains(t, result, "history.db")
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	err := EnsureDir(dir)
	assert.NoError(t, err)

	info, err := os.Stat(dir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	assert.NoError(t, EnsureDir(dir))
}
