package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	err := Wrap(CodeStorage, "failed to save chart", io.ErrUnexpectedEOF)
	require.Equal(t, "failed to save chart: unexpected EOF", err.Error())
	require.True(t, IsCode(err, CodeStorage))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	leaf := Wrap(CodeNotFound, "chart not found", nil)
	require.Equal(t, "chart not found", leaf.Error())
	require.Nil(t, errors.Unwrap(leaf))
}

func TestCodeOf(t *testing.T) {
	require.Equal(t, "", CodeOf(nil))
	require.Equal(t, "", CodeOf(io.EOF))
	wrapped := fmt.Errorf("handler: %w", Invalidf("limit %d", 3))
	require.Equal(t, CodeInvalidInput, CodeOf(wrapped))
	require.False(t, IsCode(io.EOF, ""))
}

func TestInField(t *testing.T) {
	err := InField("second", Invalidf("time must be formatted as HH:MM"))
	require.Equal(t, "second: time must be formatted as HH:MM", err.Error())

	nested := InField("candidates", InField("candidate 7", Invalidf("bad date")))
	var appErr *AppError
	require.True(t, errors.As(nested, &appErr))
	require.Equal(t, "candidates.candidate 7", appErr.Field)

	other := Wrap(CodeStorage, "down", nil)
	require.Same(t, other, InField("first", other))
	require.Equal(t, io.EOF, InField("first", io.EOF))
}

func TestInField_DoesNotMutateOriginal(t *testing.T) {
	base := Invalidf("bad date")
	_ = InField("first", base)
	require.Equal(t, "bad date", base.Error())
}
