package fonts

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// isFont reports whether path has a .ttf or .otf extension, in any case.
func isFont(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

// BaseDirs are the font roots tried in order, relative to the working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir lists the font files below dir as slash-separated paths relative to it.
// A missing dir yields nothing.
func ScanDir(dir string) ([]string, error) {
	var out []string
	root := filepath.Clean(dir)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil
		case err != nil:
			return err
		case d.IsDir() || !isFont(path):
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

var matchFolder = strings.NewReplacer(" ", "", "-", "", "_", "")

// matchKey folds case and drops spaces, dashes and underscores.
func matchKey(s string) string {
	return matchFolder.Replace(strings.ToLower(s))
}

// FindFont searches BaseDirs for a font whose path matches search, e.g. "Inter"
// or "Google Sans". An empty search matches any font.
func FindFont(search string) (relPath string, fullPath string, err error) {
	return findIn(BaseDirs(), search)
}

// findIn returns the first match under dirs. When several files match, one whose
// path contains "Regular" wins.
func findIn(dirs []string, search string) (string, string, error) {
	norm := matchKey(strings.TrimSpace(search))
	var candidates []struct{ rel, full string }
	for _, base := range dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if !strings.Contains(matchKey(rel), norm) {
				continue
			}
			full := filepath.Join(base, filepath.FromSlash(rel))
			if _, err := os.Stat(full); err == nil {
				candidates = append(candidates, struct{ rel, full string }{rel, full})
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.rel), "regular") {
			return c.rel, c.full, nil
		}
	}
	return candidates[0].rel, candidates[0].full, nil
}
