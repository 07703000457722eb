package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOptionsString(t *testing.T) {
	tests := []struct {
		opts MatchOptions
		want string
	}{
		{MatchOptions{}, ""},
		{MatchOptions{IgnoreCase: true}, "(?i)"},
		{MatchOptions{Multiline: true}, "(?m)"},
		{MatchOptions{DotAll: true}, "(?s)"},
		{MatchOptions{IgnoreCase: true, Multiline: true, DotAll: true}, "(?ims)"},
		{MatchOptions{IgnoreCase: true, DotAll: true}, "(?is)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.opts.String())
	}
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, DefaultEngine, e)

	e, err = ParseEngine(" Backtrack ")
	require.NoError(t, err)
	assert.Equal(t, EngineBacktrack, e)

	e, err = ParseEngine("regexp2")
	require.NoError(t, err)
	assert.Equal(t, EngineBacktrack, e)

	e, err = ParseEngine("stdlib")
	require.NoError(t, err)
	assert.Equal(t, EngineRE2, e)

	_, err = ParseEngine("perl6")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "perl6")
}

func TestCompileInvalidPattern(t *testing.T) {
	for _, engine := range Engines() {
		t.Run(string(engine), func(t *testing.T) {
			p, err := CompileEngine(engine, "(", MatchOptions{})
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, ErrInvalidPattern))

			perr, ok := AsPatternError(err)
			require.True(t, ok)
			assert.Equal(t, "(", perr.Pattern)
			assert.Equal(t, engine, perr.Engine)
			assert.Contains(t, perr.Error(), "invalid regex: (")
			assert.NotNil(t, errors.Unwrap(perr))
		})
	}
}

func TestCompileUnknownEngine(t *testing.T) {
	_, err := CompileEngine("sed", "a", MatchOptions{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidPattern))
}

func TestPatternErrorWithoutCause(t *testing.T) {
	err := &PatternError{Pattern: "[a"}
	assert.Equal(t, "invalid regex: [a", err.Error())
}

func TestCompileKeepsSource(t *testing.T) {
	opts := MatchOptions{IgnoreCase: true}
	p, err := Compile("a+b", opts)
	require.NoError(t, err)
	assert.Equal(t, "a+b", p.Source())
	assert.Equal(t, "a+b", p.String())
	assert.Equal(t, opts, p.Options())
	assert.Equal(t, EngineRE2, p.Engine())
}

func TestOptionSemantics(t *testing.T) {
	engines := []Engine{EngineRE2, EngineBacktrack}
	tests := []struct {
		name    string
		pattern string
		opts    MatchOptions
		text    string
		want    []int
	}{
		{"case sensitive", "abc", MatchOptions{}, "ABC abc", []int{4, 7}},
		{"ignore case", "abc", MatchOptions{IgnoreCase: true}, "ABC abc", []int{0, 3}},
		{"anchor without multiline", "^b", MatchOptions{}, "a\nb\nc", nil},
		{"anchor with multiline", "^b", MatchOptions{Multiline: true}, "a\nb\nc", []int{2, 3}},
		{"dot stops at newline", "a.b", MatchOptions{}, "a\nb", nil},
		{"dot all", "a.b", MatchOptions{DotAll: true}, "a\nb", []int{0, 3}},
		{"empty match", "x*", MatchOptions{}, "abc", []int{0, 0}},
	}
	for _, engine := range engines {
		for _, tt := range tests {
			t.Run(string(engine)+"/"+tt.name, func(t *testing.T) {
				p, err := CompileEngine(engine, tt.pattern, tt.opts)
				require.NoError(t, err)
				assert.Equal(t, tt.want, p.FindIndex(tt.text))
			})
		}
	}
}

func TestCoregexEngine(t *testing.T) {
	p, err := CompileEngine(EngineCoregex, `a+b`, MatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, p.FindIndex("xx aab ab"))
	assert.Nil(t, p.FindIndex("xx"))
}

func TestBacktrackByteOffsets(t *testing.T) {
	// Multi-byte runes before and inside the match: offsets must be bytes, not runes.
	p, err := CompileEngine(EngineBacktrack, `b+ü`, MatchOptions{})
	require.NoError(t, err)

	text := "héé bbü b"
	loc := p.FindIndex(text)
	require.NotNil(t, loc)
	assert.Equal(t, "bbü", text[loc[0]:loc[1]])
}

func TestBacktrackLookaround(t *testing.T) {
	// Lookahead is outside RE2 syntax.
	_, err := Compile(`foo(?=bar)`, MatchOptions{})
	require.Error(t, err)

	p, err := CompileEngine(EngineBacktrack, `foo(?=bar)`, MatchOptions{})
	require.NoError(t, err)
	assert.Equal(t, []int{7, 10}, p.FindIndex("foobaz foobar"))
}

func TestRuneOffset(t *testing.T) {
	s := "aé€b"
	assert.Equal(t, 0, runeOffset(s, 0))
	assert.Equal(t, 1, runeOffset(s, 1))
	assert.Equal(t, 3, runeOffset(s, 2))
	assert.Equal(t, 6, runeOffset(s, 3))
	assert.Equal(t, len(s), runeOffset(s, 4))
	assert.Equal(t, len(s), runeOffset(s, 10))
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("(", MatchOptions{}) })
	assert.NotPanics(t, func() { MustCompile("a", MatchOptions{}) })
}
