package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPattern_Match(t *testing.T) {
	tests := map[string]struct {
		pattern string
		segment string
		want    bool
	}{
		"literal":                {pattern: "array", segment: "array", want: true},
		"literal is anchored":    {pattern: "array", segment: "arrays", want: false},
		"star matches any run":   {pattern: "array*", segment: "array-sort", want: true},
		"star matches nothing":   {pattern: "array*", segment: "array", want: true},
		"star in the middle":     {pattern: "a*z", segment: "abcz", want: true},
		"dot is any character":   {pattern: "a.b", segment: "axb", want: true},
		"plus is a regexp token": {pattern: "ab+", segment: "abbb", want: true},
		"empty segment":          {pattern: "*", segment: "", want: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPattern(tc.pattern).Match(tc.segment))
		})
	}
}

func TestPattern_InvalidNeverMatches(t *testing.T) {
	p := NewPattern("a(b")

	require.Error(t, p.Compile())
	assert.False(t, p.Match("a(b"))
	assert.Equal(t, "a(b", p.String())
}

func TestPattern_ConcurrentFirstUse(t *testing.T) {
	p := NewPattern("regress-*")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			assert.True(t, p.Match("regress-1234"))
		}()
	}

	wg.Wait()
}

func TestSplitPath(t *testing.T) {
	path := SplitPath(" sample / regress//array* /")

	require.Len(t, path, 3)
	assert.Equal(t, "sample/regress/array*", path.String())
	assert.Empty(t, SplitPath(""))
	assert.Empty(t, SplitPath("///"))
}

func TestPath_Contains(t *testing.T) {
	path := SplitPath("sample/regress*")

	assert.True(t, path.Contains([]string{"sample", "regress"}))
	assert.True(t, path.Contains([]string{"sample", "regress-1", "deeper"}))
	assert.False(t, path.Contains([]string{"sample"}))
	assert.False(t, path.Contains([]string{"other", "regress"}))
	assert.True(t, Path(nil).Contains([]string{"anything"}))
}

func TestPath_Matches(t *testing.T) {
	assert.True(t, Path(nil).Matches(nil))
	assert.True(t, SplitPath("sample").Matches([]string{"sample", "a"}))
	assert.False(t, SplitPath("sample/a/b").Matches([]string{"sample", "a"}))
}

func TestPath_HeadAndPrefix(t *testing.T) {
	head, rest := SplitPath("sample/regress/*").Head()
	require.NotNil(t, head)
	assert.Equal(t, "sample", head.String())
	assert.Equal(t, "regress/*", rest.String())

	head, rest = Path(nil).Head()
	assert.Nil(t, head)
	assert.Nil(t, rest)

	prefix := SplitPath("shell")
	joined := prefix.Prefix(SplitPath("regress/known_bug"))
	assert.Equal(t, "shell/regress/known_bug", joined.String())
	assert.Len(t, prefix, 1)
}

func TestPath_Compile(t *testing.T) {
	require.NoError(t, SplitPath("a/b*/c").Compile())
	assert.Error(t, SplitPath("a/b[/c").Compile())
}
