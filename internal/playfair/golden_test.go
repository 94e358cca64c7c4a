package playfair_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-yaml"
)

// CipherCase is a single enciphering case from testdata/cipher.yml.
type CipherCase struct {
	Key         string `yaml:"key"`
	Ignore      string `yaml:"ignore"`
	Plain       string `yaml:"plain"`
	Cipher      string `yaml:"cipher"`
	Expanded    string `yaml:"expanded"`
	Description string `yaml:"description,omitempty"`
}

// ChunkCase is a single chunking case from testdata/chunk.yml.
type ChunkCase struct {
	Text        string `yaml:"text"`
	Want        string `yaml:"want"`
	Description string `yaml:"description,omitempty"`
}

// Group is a named collection of test cases.
type Group[C any] struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Cases       []C    `yaml:"cases"`
}

func loadGroups[C any](t *testing.T, file string) []Group[C] {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", file)) //nolint:gosec // test helper reads known testdata files
	if err != nil {
		t.Fatalf("reading %s: %v", file, err)
	}

	var groups []Group[C]
	if err := yaml.Unmarshal(data, &groups); err != nil {
		t.Fatalf("parsing %s: %v", file, err)
	}

	if len(groups) == 0 {
		t.Fatalf("no groups in %s", file)
	}

	return groups
}

// forEachCase iterates group→case from a golden file and calls fn per case.
func forEachCase[C any](t *testing.T, file string, describe func(C) string, fn func(t *testing.T, tc C)) {
	t.Helper()

	for _, g := range loadGroups[C](t, file) {
		g := g

		t.Run(g.Name, func(t *testing.T) {
			t.Parallel()

			for i, tc := range g.Cases {
				tc := tc

				desc := describe(tc)
				if desc == "" {
					desc = fmt.Sprintf("case_%d", i)
				}

				t.Run(desc, func(t *testing.T) {
					t.Parallel()
					fn(t, tc)
				})
			}
		})
	}
}
