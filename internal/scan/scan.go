package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/redline-cli/redline/internal/logging"
)

// Snapshot maps slash-separated paths relative to the scan root to
// file contents. Iteration order is unspecified.
type Snapshot map[string]string

// Walk returns a Snapshot of every regular text file reachable under
// root, honoring the root .gitignore and skipping hidden entries and
// the .git directory.
//
// Unreadable and non-UTF-8 files are skipped with a warning; they
// never fail the walk. An empty tree yields an empty Snapshot and a
// warning, not an error.
func Walk(root string) (Snapshot, error) {
	logger := logging.Component("scan")
	rules := loadIgnore(root)
	snap := Snapshot{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn().Str("path", path).Err(err).Msg("could not access path")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if d.Name() == ".git" || strings.HasPrefix(d.Name(), ".") || rules.match(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") || rules.match(rel, false) {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			logger.Warn().Str("path", rel).Err(readErr).Msg("could not read file")
			return nil
		}
		if !utf8.Valid(data) {
			logger.Warn().Str("path", rel).Msg("skipping non-text file")
			return nil
		}

		snap[rel] = string(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	if len(snap) == 0 {
		logger.Warn().Str("root", root).Msg("no readable files found in the codebase")
	}
	return snap, nil
}

// rule is one parsed .gitignore line.
type rule struct {
	glob     string
	negate   bool
	dirOnly  bool
	anchored bool
}

type ignoreRules []rule

// loadIgnore parses the .gitignore at root. A missing file means no
// rules.
func loadIgnore(root string) ignoreRules {
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}

	var rules ignoreRules
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r := rule{}
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		if strings.HasPrefix(line, "/") {
			line = line[1:]
			r.anchored = true
		} else if strings.Contains(line, "/") {
			// Per gitignore semantics, a pattern with a slash in it is
			// anchored to the root.
			r.anchored = true
		}
		r.glob = line
		rules = append(rules, r)
	}
	return rules
}

// match reports whether rel is ignored. Rules apply in file order, so
// a later negation can re-include a path excluded earlier.
func (rules ignoreRules) match(rel string, isDir bool) bool {
	ignored := false
	for _, r := range rules {
		if r.dirOnly && !isDir {
			continue
		}
		if r.matches(rel) {
			ignored = !r.negate
		}
	}
	return ignored
}

func (r rule) matches(rel string) bool {
	if ok, err := doublestar.Match(r.glob, rel); err == nil && ok {
		return true
	}
	if r.anchored {
		return false
	}
	// Unanchored patterns match at any depth.
	ok, err := doublestar.Match("**/"+r.glob, rel)
	return err == nil && ok
}
