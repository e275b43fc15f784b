package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

type darwinManager struct{}

func newDarwinManager() Manager {
	return &darwinManager{}
}

func (m *darwinManager) GetFontPaths() (FontPaths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return FontPaths{}, fmt.Errorf("getting user home directory: %w", err)
	}

	// The directories are only reported, never created; either may be
	// missing on a machine with no fonts installed.
	return FontPaths{
		SystemDir: "/Library/Fonts",
		UserDir:   filepath.Join(homeDir, "Library/Fonts"),
	}, nil
}
