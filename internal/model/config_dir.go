package model

import (
	"os"
	"path/filepath"
)

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".clarion-cache"
	}
	return filepath.Join(home, ".clarion", "cache")
}
