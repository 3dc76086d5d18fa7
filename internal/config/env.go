// Package config provides centralized configuration management.
// All SIMPILOT_* environment variables are read here, once.
package config

import (
	"os"
	"path/filepath"
	"sync"
)

// SimpilotEnv holds all simpilot environment variables.
type SimpilotEnv struct {
	// SessionID is the current session identifier (SIMPILOT_SESSION_ID)
	SessionID string

	// UDID is the default target simulator (SIMPILOT_UDID)
	UDID string

	// IDBPath is the idb binary to invoke (SIMPILOT_IDB_PATH)
	IDBPath string

	// DataDir overrides the data directory (SIMPILOT_DATA_DIR)
	DataDir string

	// NoColor disables colored output (SIMPILOT_NO_COLOR)
	NoColor bool
}

var (
	env     *SimpilotEnv
	envOnce sync.Once
)

// Env returns the singleton environment configuration.
// Thread-safe, loads once on first call.
func Env() *SimpilotEnv {
	envOnce.Do(func() {
		env = &SimpilotEnv{
			SessionID: os.Getenv("SIMPILOT_SESSION_ID"),
			UDID:      os.Getenv("SIMPILOT_UDID"),
			IDBPath:   getEnvDefault("SIMPILOT_IDB_PATH", "idb"),
			DataDir:   os.Getenv("SIMPILOT_DATA_DIR"),
			NoColor:   os.Getenv("SIMPILOT_NO_COLOR") == "1",
		}
	})
	return env
}

// ResetEnv resets the cached environment (for testing).
func ResetEnv() {
	envOnce = sync.Once{}
	env = nil
	pathsOnce = sync.Once{}
	paths = nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Paths holds standard simpilot directory paths.
type Paths struct {
	// Home is the simpilot home directory (~/.simpilot)
	Home string

	// Data is the data directory (~/.simpilot/data)
	Data string

	// Captures is where screenshots and recordings land (~/.simpilot/captures)
	Captures string

	// HistoryDB is the execution history database (~/.simpilot/data/history.db)
	HistoryDB string
}

var (
	paths     *Paths
	pathsOnce sync.Once
)

// GetPaths returns the singleton paths configuration.
func GetPaths() *Paths {
	pathsOnce.Do(func() {
		home := Env().DataDir
		if home == "" {
			userHome, err := os.UserHomeDir()
			if err != nil {
				userHome = "."
			}
			home = filepath.Join(userHome, ".simpilot")
		}

		paths = &Paths{
			Home:      home,
			Data:      filepath.Join(home, "data"),
			Captures:  filepath.Join(home, "captures"),
			HistoryDB: filepath.Join(home, "data", "history.db"),
		}
	})
	return paths
}

// Path returns a path under the simpilot home directory.
func Path(parts ...string) string {
	p := GetPaths()
	allParts := append([]string{p.Home}, parts...)
	return filepath.Join(allParts...)
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
