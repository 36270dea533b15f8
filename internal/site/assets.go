package site

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/akaram/folio/internal/config"
)

// CopyAssets copies files from the configured assets directory into the
// output directory, honoring include/exclude globs. Returns the number of
// files copied. An unset or missing assets directory copies nothing.
func CopyAssets(a config.Assets, outputDir string) (int, error) {
	if a.Dir == "" {
		return 0, nil
	}
	if _, err := os.Stat(a.Dir); os.IsNotExist(err) {
		return 0, nil
	}

	count := 0
	err := filepath.WalkDir(a.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(a.Dir, path)
		if err != nil {
			return err
		}
		if len(a.Include) > 0 && !matchesAny(rel, a.Include) {
			return nil
		}
		if matchesAny(rel, a.Exclude) {
			return nil
		}

		dst := filepath.Join(outputDir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := copyFile(path, dst); err != nil {
			return fmt.Errorf("copying %s: %w", rel, err)
		}
		count++
		return nil
	})
	return count, err
}

// matchesAny checks relPath against the glob patterns, with ** support via
// doublestar and a second try against just the base name.
func matchesAny(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, filepath.Base(normalized)); err == nil && matched {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
