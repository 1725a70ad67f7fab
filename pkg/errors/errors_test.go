package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndError(t *testing.T) {
	err := New(ErrTemplateSyntax, "unbalanced delimiters")
	assert.Equal(t, "[TEMPLATE_SYNTAX] unbalanced delimiters", err.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrapf(cause, ErrFileWrite, "writing %q", "README.md")

	assert.Equal(t, ErrFileWrite, GetCode(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "README.md")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileRead, "reading"))
	assert.Nil(t, Wrapf(nil, ErrFileRead, "reading %s", "x"))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Newf(ErrFileRename, "renaming %s", "a.txt")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, stderrors.Is(wrapped, New(ErrFileRename, "")))
	assert.False(t, stderrors.Is(wrapped, New(ErrFileWrite, "")))
}

func TestGetCodeFallsBackToUnknown(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetCode(stderrors.New("plain")))
	assert.True(t, IsCode(New(ErrPathResolve, "x"), ErrPathResolve))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrTemplateRender, "unknown filter").
		WithDetail("file", "Cargo.toml.liquid")

	require.Contains(t, err.Details, "file")
	assert.Equal(t, "Cargo.toml.liquid", err.Details["file"])
}
