package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "identifier", input: "PASS", want: "pass"},
		{name: "variable", input: "$Mode", want: "$mode"},
		{name: "constant", input: "true", want: "true"},
		{name: "or", input: "PASS || FAIL", want: "(pass || fail)"},
		{name: "comma kept distinct", input: "FAIL, OKAY", want: "(fail, okay)"},
		{name: "logical folds left", input: "a && b || c", want: "((a && b) || c)"},
		{name: "equals nests right", input: "a == b == c", want: "(a == (b == c))"},
		{name: "if folds left", input: "a IF b IF c", want: "((a IF b) IF c)"},
		{name: "if binds tighter than or", input: "a IF $x == y || b", want: "((a IF ($x == y)) || b)"},
		{name: "parens", input: "(a || b) && c", want: "((a || b) && c)"},
		{name: "whitespace ignored", input: "  $mode==debug  ", want: "($mode == debug)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{name: "empty", input: "", offset: 0},
		{name: "blank", input: "   ", offset: 0},
		{name: "unmatched paren", input: "(a || b", offset: 7},
		{name: "missing operand", input: "a &&", offset: 4},
		{name: "bad character", input: "a = b", offset: 2},
		{name: "trailing tokens", input: "a b", offset: 2},
		{name: "stray close paren", input: "a)", offset: 1},
		{name: "dollar without name", input: "$ && a", offset: 2},
		{name: "if without operand", input: "IF a", offset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			assert.Nil(t, expr)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "got %v", err)
			assert.Equal(t, tt.input, parseErr.Source)
			assert.Equal(t, tt.offset, parseErr.Offset)
		})
	}
}

func TestParse_KeywordsAreCaseSensitive(t *testing.T) {
	expr, err := Parse("True")
	require.NoError(t, err)
	assert.Equal(t, NodeOutcome, expr.Kind())

	expr, err = Parse("a if b")
	assert.Nil(t, expr)
	assert.Error(t, err)
}
