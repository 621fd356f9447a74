package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/textree/internal/cli"
	"github.com/yaklabco/textree/pkg/tree"
)

func newStdin(text string) io.Reader {
	return strings.NewReader(text)
}

func discardOutput(cmd interface {
	SetOut(io.Writer)
	SetErr(io.Writer)
}) {
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
}

// isolateConfig keeps the developer's real config files out of the run.
// Cannot be combined with t.Parallel.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// execute runs the root command against input and returns stdout.
func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testBuildInfo())
	cmd.SetIn(newStdin(input))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestExecute_DefaultThemedOutput(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "a\n  b\n  c\n")
	require.NoError(t, err)

	want := "" +
		"a\n" +
		"├── b\n" +
		"└── c\n"
	assert.Equal(t, want, out)
}

func TestExecute_AsciiTheme(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "a\n  b\n  c\n", "-t", "ascii")
	require.NoError(t, err)
	assert.Equal(t, "a\n|-- b\n`-- c\n", out)
}

func TestExecute_ThemeNoneRoundTrips(t *testing.T) {
	isolateConfig(t)

	input := "a\n  b\n    c\n  d\ne\n"
	out, err := execute(t, input, "-t", "none")
	require.NoError(t, err)
	assert.Equal(t, input, out)
}

func TestExecute_GlyphOverride(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "a\n  b\n  c\n", "--glyphs", "+-,|,^,.")
	require.NoError(t, err)
	assert.Equal(t, "a\n+-b\n^c\n", out)
}

func TestExecute_GlyphOverrideWrongCount(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "a\n", "--glyphs", "+-,|")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeForError(err))
}

func TestExecute_JSONFormat(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "a\n  b\n  c\n", "-f", "json")
	require.NoError(t, err)

	// Non-interactive sink: no trailing newline.
	assert.Equal(t, `[{"a":["b","c"]}]`, out)
}

func TestExecute_IndicesFormat(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "a\n  b\n  c\n", "-f", "indices")
	require.NoError(t, err)

	want := "" +
		"  0   a\n" +
		"  0  0   b\n" +
		"  0  1   c\n"
	assert.Equal(t, want, out)
}

func TestExecute_PathSelection(t *testing.T) {
	isolateConfig(t)

	input := "a\n  b\n    c\n    d\n  e\n"

	t.Run("numeric path shows selected root", func(t *testing.T) {
		out, err := execute(t, input, "0", "0")
		require.NoError(t, err)
		assert.Equal(t, "b\n├── c\n└── d\n", out)
	})

	t.Run("text path", func(t *testing.T) {
		out, err := execute(t, input, "a", "b")
		require.NoError(t, err)
		assert.Equal(t, "b\n├── c\n└── d\n", out)
	})

	t.Run("hide-root on selection", func(t *testing.T) {
		out, err := execute(t, input, "--hide-root", "0", "0")
		require.NoError(t, err)
		assert.Equal(t, "c\nd\n", out)
	})
}

func TestExecute_PathErrors(t *testing.T) {
	isolateConfig(t)

	t.Run("out of range", func(t *testing.T) {
		_, err := execute(t, "a\n  b\n", "5")
		require.Error(t, err)
		var oor *tree.OutOfRangeError
		assert.ErrorAs(t, err, &oor)
		assert.Equal(t, cli.ExitFailure, cli.ExitCodeForError(err))
	})

	t.Run("not found enumerates siblings", func(t *testing.T) {
		_, err := execute(t, "a\nb\n", "z")
		require.Error(t, err)
		var nf *tree.NotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, []string{"a", "b"}, nf.Available)
	})
}

func TestExecute_CustomMatcher(t *testing.T) {
	isolateConfig(t)

	input := "a\n-b\n--c\n-d\n"
	out, err := execute(t, input, "-m", "-", "--last", "--after")
	require.NoError(t, err)

	want := "" +
		"a\n" +
		"├── b\n" +
		"│   └── c\n" +
		"└── d\n"
	assert.Equal(t, want, out)
}

func TestExecute_BadPattern(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "a\n", "-m", "(")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeForError(err))
}

func TestExecute_BadFormat(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "a\n", "-f", "yaml")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeForError(err))
}

func TestExecute_UnknownTheme(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "a\n", "-t", "bogus")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeForError(err))
}

func TestExecute_Markdown(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "# A\n\ntext\n\n## B\n## C\n", "--markdown")
	require.NoError(t, err)

	want := "" +
		"A\n" +
		"├── B\n" +
		"└── C\n"
	assert.Equal(t, want, out)
}

func TestExecute_InputFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\n  b\n"), 0o644))

	out, err := execute(t, "", "-i", path)
	require.NoError(t, err)
	assert.Equal(t, "a\n└── b\n", out)
}

func TestExecute_InputFileMissing(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "", "-i", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(err))
}

func TestExecute_OutputFile(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "out.txt")
	stdout, err := execute(t, "a\n  b\n  c\n", "-o", path, "-t", "ascii")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\n|-- b\n`-- c\n", string(data))
}

func TestExecute_ExplicitConfig(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "conf.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: ascii\n"), 0o644))

	out, err := execute(t, "a\n  b\n", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "a\n`-- b\n", out)
}

func TestExecute_FlagOverridesConfig(t *testing.T) {
	isolateConfig(t)

	path := filepath.Join(t.TempDir(), "conf.yml")
	require.NoError(t, os.WriteFile(path, []byte("theme: ascii\nformat: indices\n"), 0o644))

	out, err := execute(t, "a\n  b\n", "--config", path, "-t", "unicode", "-f", "plain")
	require.NoError(t, err)
	assert.Equal(t, "a\n└── b\n", out)
}

func TestExecute_EmptyInput(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}
