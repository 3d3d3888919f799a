package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	VaultPath string
	LogLevel  string
}

func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		VaultPath: filepath.Join(home, "notes"),
		LogLevel:  "info",
	}
}
