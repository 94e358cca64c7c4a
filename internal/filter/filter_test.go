package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePath(t *testing.T) {
	t.Parallel()

	for path, ok := range map[string]bool{
		"notes.txt":   true,
		"dir/../x":    true,
		"..notes":     true,
		"/etc/passwd": false,
		"..":          false,
		"../secret":   false,
		"dir/../../x": false,
	} {
		err := validatePath(path)
		if ok {
			assert.NoError(t, err, path)
		} else {
			assert.Error(t, err, path)
		}
	}
}

func TestFilterMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, Filter{}.match("a.txt"))
	assert.True(t, Filter{Suffix: ".pf", Want: true}.match("a.txt.pf"))
	assert.False(t, Filter{Suffix: ".pf", Want: true}.match("a.txt"))
	assert.False(t, Filter{Suffix: ".pf"}.match("a.txt.pf"))
	assert.True(t, Filter{Suffix: ".pf"}.match("a.txt"))
}

func TestResolve(t *testing.T) {
	chdir(t, t.TempDir())

	for _, name := range []string{"top.txt", "msgs/a.txt", "msgs/a.txt.pf", "msgs/deep/b.txt.pf"} {
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o750))
		require.NoError(t, os.WriteFile(name, []byte("hello"), 0o600))
	}

	files, scanned, err := Resolve([]string{"msgs", "top.txt"}, Filter{Suffix: ".pf", Want: true})
	require.NoError(t, err)
	assert.Equal(t, 4, scanned)
	assert.ElementsMatch(t, []string{"msgs/a.txt.pf", "msgs/deep/b.txt.pf", "top.txt"}, files)

	files, _, err = Resolve([]string{"msgs", "./msgs/a.txt"}, Filter{Suffix: ".pf"})
	require.NoError(t, err)
	assert.Equal(t, []string{"msgs/a.txt"}, files)

	_, _, err = Resolve([]string{"missing"}, Filter{})
	require.Error(t, err)

	require.NoError(t, os.MkdirAll("empty", 0o750))

	_, _, err = Resolve([]string{"empty"}, Filter{})
	require.Error(t, err)
}

func TestFilterPatterns(t *testing.T) {
	t.Parallel()

	flt, err := NewFilter(".pf", false, []string{"./msgs/*"}, []string{"*secret*"})
	require.NoError(t, err)

	assert.True(t, flt.match("msgs/a.txt"))
	assert.True(t, flt.match("msgs/deep/b.txt"))
	assert.False(t, flt.match("other/a.txt"), "not included")
	assert.False(t, flt.match("msgs/top-secret.txt"), "excluded")
	assert.False(t, flt.match("msgs/a.txt.pf"), "already enciphered")

	_, err = NewFilter("", false, []string{"[abc"}, nil)
	require.Error(t, err)

	_, err = NewFilter("", false, nil, []string{`bad\`})
	require.Error(t, err)
}

func TestLoadPatterns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "patterns.jsonc")
	content := `[
	// plain text only
	"*.txt",
	"notes/*", /* whole directory */
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	patterns, err := LoadPatterns(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.txt", "notes/*"}, patterns)

	_, err = LoadPatterns(filepath.Join(t.TempDir(), "missing.jsonc"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"not": "a list"}`), 0o600))

	_, err = LoadPatterns(path)
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
