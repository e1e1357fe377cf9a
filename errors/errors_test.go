package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/nain-lang/go-nain/errors"
	"github.com/stretchr/testify/require"
)

func TestLexError(t *testing.T) {
	err := errors.LexError{Message: "unexpected character", Line: 3, Column: 7}
	require.EqualError(t, err, "nain: lexical error at line 3, column 7: unexpected character")

	noPos := errors.LexError{Message: "boom"}
	require.EqualError(t, noPos, "nain: lexical error: boom")
}

func TestLexErrors(t *testing.T) {
	require.Empty(t, errors.LexErrors(nil).Error())

	one := errors.LexErrors{{Message: "a", Line: 1, Column: 1}}
	require.EqualError(t, one, "nain: lexical error at line 1, column 1: a")

	many := errors.LexErrors{
		{Message: "a", Line: 1, Column: 1},
		{Message: "b", Line: 2, Column: 4},
		{Message: "c", Line: 5, Column: 2},
	}
	require.EqualError(t, many, "nain: lexical error at line 1, column 1: a (and 2 more)")

	var target errors.LexError
	require.True(t, stderrors.As(many, &target))
	require.Equal(t, "a", target.Message)
	require.ErrorIs(t, many, errors.LexError{Message: "b", Line: 2, Column: 4})
}
