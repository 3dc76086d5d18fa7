package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnv(t *testing.T) {
	// Reset env for clean test
	ResetEnv()

	// Set test environment
	os.Setenv("SIMPILOT_SESSION_ID", "sess-123")
	os.Setenv("SIMPILOT_UDID", "0000-1111")
	os.Setenv("SIMPILOT_IDB_PATH", "/opt/idb/bin/idb")
	os.Setenv("SIMPILOT_NO_COLOR", "1")
	defer func() {
		os.Unsetenv("SIMPILOT_SESSION_ID")
		os.Unsetenv("SIMPILOT_UDID")
		os.Unsetenv("SIMPILOT_IDB_PATH")
		os.Unsetenv("SIMPILOT_NO_COLOR")
		ResetEnv()
	}()

	env := Env()

	assert.Equal(t, "sess-123", env.SessionID)
	assert.Equal(t, "0000-1111", env.UDID)
	assert.Equal(t, "/opt/idb/bin/idb", env.IDBPath)
	assert.True(t, env.NoColor)
}

func TestEnvDefaults(t *testing.T) {
	ResetEnv()

	os.Unsetenv("SIMPILOT_IDB_PATH")
	defer ResetEnv()

	env := Env()

	assert.Equal(t, "idb", env.IDBPath)
	assert.False(t, env.NoColor)
}

func TestEnvSingleton(t *testing.T) {
	ResetEnv()
	defer ResetEnv()

	env1 := Env()
	env2 := Env()

	// Should return same instance
	assert.Same(t, env1, env2)
}

func TestResetEnv(t *testing.T) {
	os.Setenv("SIMPILOT_SESSION_ID", "first")
	ResetEnv()
	env1 := Env()
	assert.Equal(t, "first", env1.SessionID)

	os.Setenv("SIMPILOT_SESSION_ID", "second")
	ResetEnv()

	env2 := Env()
	assert.Equal(t, "second", env2.SessionID)

	// Cleanup
	os.Unsetenv("SIMPILOT_SESSION_ID")
	ResetEnv()
}

func TestGetEnvDefault(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		envVal   string
		fallback string
		want     string
	}{
		{"env set", "TEST_KEY", "value", "default", "value"},
		{"env empty", "TEST_KEY", "", "default", "default"},
		{"env not set", "TEST_KEY_NOTSET", "", "fallback", "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envVal != "" {
				os.Setenv(tt.key, tt.envVal)
				defer os.Unsetenv(tt.key)
			}
			got := getEnvDefault(tt.key, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetPaths(t *testing.T) {
	ResetEnv()
	os.Unsetenv("SIMPILOT_DATA_DIR")
	defer ResetEnv()

	paths := GetPaths()

	assert.NotEmpty(t, paths.Home)
	assert.Contains(t, paths.Home, ".simpilot")
	assert.Equal(t, filepath.Join(paths.Home, "data"), paths.Data)
	assert.Equal(t, filepath.Join(paths.Home, "captures"), paths.Captures)
	assert.Equal(t, filepath.Join(paths.Home, "data", "history.db"), paths.HistoryDB)
}

func TestDataDirOverride(t *testing.T) {
	ResetEnv()
	os.Setenv("SIMPILOT_DATA_DIR", "/tmp/simpilot-test")
	defer func() {
		os.Unsetenv("SIMPILOT_DATA_DIR")
		ResetEnv()
	}()
	ResetEnv()

	paths := GetPaths()
	assert.Equal(t, "/tmp/simpilot-test", paths.Home)
}

func TestPath(t *testing.T) {
	ResetEnv()
	os.Unsetenv("SIMPILOT_DATA_DIR")
	defer ResetEnv()

	result := Path("subdir", "file.txt")

	assert.Contains(t, result, ".simpilot")
	assert.Contains(t, result, "subdir")
	assert.Contains(t, result, "file.txt")
}

func TestEnsureDir(t *testing.T) {
	// Create temp directory
	tempDir := filepath.Join(os.TempDir(), "simpilot-test-ensure")
	defer os.RemoveAll(tempDir)

	// Ensure it doesn't exist
	os.RemoveAll(tempDir)

	// Create it
	err := EnsureDir(tempDir)
	assert.NoError(t, err)

	// Verify it exists
	info, err := os.Stat(tempDir)
	assert.NoError(t, err)
	assert.True(t, info.IsDir())

	// Running again should be idempotent
	err = EnsureDir(tempDir)
	assert.NoError(t, err)
}
