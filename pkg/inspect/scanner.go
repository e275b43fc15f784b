package inspect

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/logandonley/font-inspector/internal/platform"
)

// Scanner walks the platform font directories and reports on every font
// file it finds.
type Scanner struct {
	platform platform.Manager
}

// NewScanner creates a scanner using platform-specific font directories.
func NewScanner() *Scanner {
	return NewScannerWithPlatform(platform.New())
}

func NewScannerWithPlatform(p platform.Manager) *Scanner {
	return &Scanner{platform: p}
}

// Scan inspects every font file under the user and system font
// directories.
func (s *Scanner) Scan(ctx context.Context) ([]Report, error) {
	paths, err := s.platform.GetFontPaths()
	if err != nil {
		return nil, fmt.Errorf("getting font paths: %w", err)
	}

	var reports []Report

	userReports, err := s.scanDir(ctx, paths.UserDir)
	if err != nil {
		return nil, fmt.Errorf("scanning user fonts: %w", err)
	}
	reports = append(reports, userReports...)

	systemReports, err := s.scanDir(ctx, paths.SystemDir)
	if err == nil {
		reports = append(reports, systemReports...)
	}
	// We intentionally ignore system directory errors since we might not have permission

	return reports, nil
}

func (s *Scanner) scanDir(ctx context.Context, dir string) ([]Report, error) {
	// A missing directory just means there are no fonts to report.
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var reports []Report

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Entries we cannot stat or list are skipped, not fatal.
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		// Skip if it's not a font file
		if info.IsDir() || !isFontFile(info.Name()) {
			return nil
		}

		report, err := Inspect(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", path, err)
			return nil
		}
		reports = append(reports, report)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", dir, err)
	}

	return reports, nil
}

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf", ".ttc", ".otc", ".woff", ".woff2":
		return true
	}
	return false
}
