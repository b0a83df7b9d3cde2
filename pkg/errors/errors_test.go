package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrConflict, "/etc/zshrc already exists")
	assert.Equal(t, "[DEST_CONFLICT] /etc/zshrc already exists", err.Error())

	wrapped := Wrap(fmt.Errorf("permission denied"), ErrIO, "unable to read metadata")
	assert.Equal(t, "[IO_FAILURE] unable to read metadata: permission denied", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrIO, "whatever"))
	assert.Nil(t, Wrapf(nil, ErrIO, "whatever %d", 1))
}

func TestErrorCodeMatching(t *testing.T) {
	err := Newf(ErrRedirectUnresolved, "unable to resolve redirect key %q", "FOO")

	assert.True(t, IsErrorCode(err, ErrRedirectUnresolved))
	assert.False(t, IsErrorCode(err, ErrConflict))
	assert.Equal(t, ErrRedirectUnresolved, GetErrorCode(err))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestMatchingThroughWrapping(t *testing.T) {
	inner := New(ErrConflict, "conflict")
	outer := fmt.Errorf("package zsh: %w", inner)

	assert.True(t, IsErrorCode(outer, ErrConflict))

	joined := stderrors.Join(fmt.Errorf("other"), outer)
	assert.True(t, IsErrorCode(joined, ErrConflict))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrIO, "boom").WithDetail("path", "/etc/x")
	assert.Equal(t, "/etc/x", err.Details["path"])
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("root cause")
	err := Wrap(inner, ErrIO, "context")
	assert.Equal(t, inner, stderrors.Unwrap(err))
}
