package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/rematch/internal/clipboard"
	"github.com/bethropolis/rematch/internal/theme"
	"github.com/bethropolis/rematch/internal/tui"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// run executes rematch in an isolated config home.
func run(t *testing.T, rt *runtime, stdin string, args ...string) result {
	t.Helper()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	if rt == nil {
		rt = &runtime{}
	}
	if rt.clip == nil {
		rt.clip = &clipboard.Memory{}
	}
	var stdout, stderr bytes.Buffer
	code := execute(rt, args, strings.NewReader(stdin), &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func TestMatchCommand(t *testing.T) {
	res := run(t, nil, "", "match", "--format", "plain", "a+b", "this line has one match:", "aaab")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "this line has one match: [aaab]\n", res.stdout)
}

func TestMatchCommandReadsStdin(t *testing.T) {
	for _, args := range [][]string{
		{"match", "--format", "plain", "-m", "^b"},
		{"match", "--format", "plain", "-m", "^b", "-"},
	} {
		res := run(t, nil, "a\nb\nc", args...)
		require.Equal(t, ExitOK, res.code, res.stderr)
		assert.Equal(t, "a\n[b]\nc\n", res.stdout)
	}
}

func TestMatchCommandNoMatchesSucceeds(t *testing.T) {
	res := run(t, nil, "", "match", "--format", "plain", "z", "abc")
	assert.Equal(t, ExitOK, res.code)
	assert.Equal(t, "abc\n", res.stdout)
}

func TestMatchCommandInvalidPattern(t *testing.T) {
	for _, engine := range []string{"re2", "coregex", "backtrack"} {
		res := run(t, nil, "", "match", "--format", "plain", "--engine", engine, "(", "abc")
		assert.Equal(t, ExitInvalidPattern, res.code, engine)
		assert.True(t, strings.HasPrefix(res.stdout, "error: invalid regex: ("), res.stdout)
		assert.Empty(t, res.stderr)
	}
}

func TestMatchCommandJSON(t *testing.T) {
	res := run(t, nil, "", "match", "--format", "json", "-i", "A", "bab")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"matches": 1`)
	assert.Contains(t, res.stdout, `"text": "a"`)
}

func TestMatchCommandHTMLPaletteFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[render]\nformat = \"html\"\nmatch_colors = [\"red\", \"blue\"]\n"), 0o644))

	res := run(t, nil, "", "--config", path, "match", "a", "<a a>")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "red")
	assert.Contains(t, res.stdout, "blue")
	assert.Contains(t, res.stdout, "&lt;")
	assert.NotContains(t, res.stdout, "<a a>")
}

func TestMatchCommandMaxMatches(t *testing.T) {
	res := run(t, nil, "", "match", "--format", "plain", "--max-matches", "2", "a", "aaaa")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "[a][a]aa\n", res.stdout)
}

func TestMatchCommandCopy(t *testing.T) {
	clip := &clipboard.Memory{}
	res := run(t, &runtime{clip: clip}, "", "match", "--format", "plain", "--copy", "b", "abcb")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "a[b]c[b]", clip.Text)
	assert.Contains(t, res.stderr, "Copied plain rendering (2 matches)")
}

func TestFileCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("one 1\ntwo 22\n"), 0o644))

	res := run(t, nil, "", "file", "--format", "plain", path, `\d+`)
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "one [1]\ntwo [22]\n", res.stdout)
}

func TestFileCommandMissingFile(t *testing.T) {
	res := run(t, nil, "", "file", filepath.Join(t.TempDir(), "missing.txt"), "x")
	assert.Equal(t, ExitError, res.code)
	assert.Contains(t, res.stderr, "Error: reading")
}

func TestUnknownFormatFlagFails(t *testing.T) {
	res := run(t, nil, "", "match", "--format", "pdf", "a", "a")
	assert.Equal(t, ExitError, res.code)
	assert.Contains(t, res.stderr, "unknown output format")
	assert.Empty(t, res.stdout)
}

func TestUnknownEngineFlagFails(t *testing.T) {
	res := run(t, nil, "", "--engine", "pcre2", "match", "a", "a")
	assert.Equal(t, ExitError, res.code)
	assert.Contains(t, res.stderr, "unknown engine")
	assert.Empty(t, res.stdout)
}

func TestInvalidConfigValueWarnsOnStderr(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[match]\nengine = \"pcre2\"\n[render]\nformat = \"pdf\"\n"), 0o644))

	res := run(t, nil, "", "--config", path, "match", "--format", "plain", "a", "ab")
	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Equal(t, "[a]b\n", res.stdout)
	assert.Contains(t, res.stderr, "warning: unknown engine 'pcre2'")
	assert.NotContains(t, res.stderr, "output format")
}

func TestUnknownThemeWarnsOnStderr(t *testing.T) {
	res := run(t, nil, "", "--theme", "nope", "themes")
	require.Equal(t, ExitOK, res.code)
	assert.Contains(t, res.stderr, "warning: theme 'nope' not found")
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[match"), 0o644))

	res := run(t, nil, "", "--config", path, "match", "a", "a")
	assert.Equal(t, ExitError, res.code)
	assert.Contains(t, res.stderr, "failed to parse config file")
}

func TestMissingArgumentsFail(t *testing.T) {
	res := run(t, nil, "", "match")
	assert.Equal(t, ExitError, res.code)
	res = run(t, nil, "", "file", "only-one")
	assert.Equal(t, ExitError, res.code)
}

func TestThemesCommand(t *testing.T) {
	res := run(t, nil, "", "--theme", "monochrome", "themes")
	require.Equal(t, ExitOK, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, len(theme.Builtins()))
	assert.Contains(t, lines, "* "+theme.Monochrome.Name)
	assert.Contains(t, lines, "  "+theme.RegexMagic.Name)
}

func TestInteractiveCommand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	sim := tcell.NewSimulationScreen("UTF-8")
	done := make(chan result, 1)
	go func() {
		var stdout, stderr bytes.Buffer
		code := execute(&runtime{screen: sim, clip: &clipboard.Memory{}}, []string{"i", "-p", "b+"}, strings.NewReader("abbc"), &stdout, &stderr)
		done <- result{code: code, stdout: stdout.String(), stderr: stderr.String()}
	}()

	row := func(y int) string {
		width, _ := sim.Size()
		var b strings.Builder
		for x := 0; x < width; x++ {
			r, _, _, _ := sim.GetContent(x, y)
			b.WriteRune(r)
		}
		return strings.TrimRight(b.String(), " ")
	}
	require.Eventually(t, func() bool {
		return row(tui.PatternRow) == tui.PatternPrompt+"b+"
	}, 3*time.Second, 5*time.Millisecond)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	select {
	case res := <-done:
		assert.Equal(t, ExitOK, res.code, res.stderr)
	case <-time.After(3 * time.Second):
		t.Fatal("interactive mode did not exit")
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(strings.NewReader("text")))

	f, err := os.CreateTemp(t.TempDir(), "input")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f))
}
