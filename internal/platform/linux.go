package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

type linuxManager struct{}

func newLinuxManager() Manager {
	return &linuxManager{}
}

func (m *linuxManager) GetFontPaths() (FontPaths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return FontPaths{}, fmt.Errorf("getting user home directory: %w", err)
	}

	// The directories are only reported, never created; either may be
	// missing on a machine with no fonts installed.
	return FontPaths{
		SystemDir: "/usr/local/share/fonts",
		UserDir:   filepath.Join(homeDir, ".local/share/fonts"),
	}, nil
}
