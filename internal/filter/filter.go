// Package filter resolves the files to process from positional path arguments.
package filter

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/playfair/pkg/pathmatch"
)

// Filter selects walked files by their suffix and by include/exclude patterns.
// With Want set only files ending in Suffix are kept, otherwise those files are skipped.
// Patterns follow find -path semantics against the slash-separated path; excludes always win.
type Filter struct {
	Suffix string
	Want   bool

	includes *pathmatch.Matcher
	excludes *pathmatch.Matcher
}

// NewFilter compiles include/exclude patterns into a filter on top of the suffix rule.
// Empty includes means "match all".
func NewFilter(suffix string, want bool, includes, excludes []string) (Filter, error) {
	inc, err := pathmatch.NewMatcher(normalizePatterns(includes))
	if err != nil {
		return Filter{}, fmt.Errorf("compiling include patterns: %w", err)
	}

	exc, err := pathmatch.NewMatcher(normalizePatterns(excludes))
	if err != nil {
		return Filter{}, fmt.Errorf("compiling exclude patterns: %w", err)
	}

	return Filter{Suffix: suffix, Want: want, includes: inc, excludes: exc}, nil
}

// match returns true if the slash-separated path should be included.
func (f Filter) match(path string) bool {
	if f.Suffix != "" && strings.HasSuffix(path, f.Suffix) != f.Want {
		return false
	}

	if f.includes != nil && !f.includes.Empty() && !f.includes.MatchAny(path) {
		return false
	}

	return f.excludes == nil || !f.excludes.MatchAny(path)
}

// normalizePatterns strips leading "./" so patterns match cleaned paths.
func normalizePatterns(patterns []string) []string {
	out := make([]string, len(patterns))

	for i, p := range patterns {
		out[i] = strings.TrimPrefix(p, "./")
	}

	return out
}

// Resolve takes positional args (files/directories).
// Files are added directly (bypassing filtering). Directories are walked and filtered.
// Returns matched files and total candidates scanned.
func Resolve(args []string, flt Filter) (files []string, scanned int, err error) {
	for _, arg := range args {
		if err := validatePath(arg); err != nil {
			return nil, 0, err
		}
	}

	seen := make(map[string]struct{})

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, arg := range args {
		arg = filepath.Clean(arg)

		info, err := os.Stat(arg)
		if err != nil {
			return nil, 0, fmt.Errorf("stat %q: %w", arg, err)
		}

		if !info.IsDir() {
			scanned++

			add(arg)

			continue
		}

		walked, total, err := walkDir(arg, flt)
		if err != nil {
			return nil, 0, err
		}

		scanned += total

		for _, path := range walked {
			add(path)
		}
	}

	if len(files) == 0 {
		return nil, scanned, fmt.Errorf("no files matched the provided paths: %v", args)
	}

	return files, scanned, nil
}

// walkDir walks root recursively, returning regular files that pass the filter.
func walkDir(root string, flt Filter) (files []string, total int, err error) {
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		total++

		if flt.match(filepath.ToSlash(filepath.Clean(path))) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, total, nil
}

// validatePath rejects paths that escape the current working directory.
func validatePath(path string) error {
	if filepath.IsAbs(path) {
		return fmt.Errorf("absolute paths are not allowed: %q", path)
	}

	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("paths must be within the current working directory: %q", path)
	}

	return nil
}
