package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/playfair/internal/commands"
	"github.com/idelchi/playfair/internal/config"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var (
		cfg config.Config
		out bytes.Buffer
	)

	root := commands.NewRootCommand(&cfg, "test")
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()

	return out.String(), err
}

func TestEncipherDecipher(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "-i", "j", "encipher", "-k", "death", "LABOULAYE LADY WILL LEAD TO CIBOLA TEMPLES OF GOLD")
	require.NoError(t, err)
	assert.Equal(t, "ME IK QO TX CQ TE ZX CO MW QC TE HN FB IK ME HA KR QC UN GI KM AV\n", out)

	out, err = execute(t, "ME IK QO TX", "dec", "--key", "death", "--ignore", "j")
	require.NoError(t, err)
	assert.Equal(t, "LA BO UL AY\n", out)
}

func TestSquare(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "", "square", "-k", "death", "-i", "j")
	require.NoError(t, err)
	assert.Equal(t, "| d e a t h |\n| b c f g i |\n| k l m n o |\n| p q r s u |\n| v w x y z |\n", out)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "", "encipher", "hello")
	require.Error(t, err, "missing key")

	_, err = execute(t, "", "encipher", "-k", "death", "-i", "7", "hello")
	require.Error(t, err, "invalid ignore letter")

	_, err = execute(t, "", "encipher", "-k", "death", "-i", "J", "hello")
	require.ErrorIs(t, err, config.ErrIgnoreLetter, "uppercase ignore letter")

	_, err = execute(t, "", "encipher", "-k", "death", "--files")
	require.Error(t, err, "file mode without paths")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("PLAYFAIR_KEY", "death")
	t.Setenv("PLAYFAIR_IGNORE", "j")

	out, err := execute(t, "", "enc", "la", "bo")
	require.NoError(t, err)
	assert.Equal(t, "ME IK\n", out)
}
