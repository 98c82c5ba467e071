package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindHelpers(t *testing.T) {
	cause := errors.New("no such key")
	notFound := NewError("read", "b", "transcription/x.txt", KindNotFound, cause)
	denied := NewError("list", "b", "", KindAccessDenied, errors.New("denied"))

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(denied))
	assert.True(t, IsAccessDenied(denied))

	// classification survives wrapping
	wrapped := fmt.Errorf("listing library: %w", notFound)
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, KindNotFound, KindOf(wrapped))

	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
	assert.ErrorIs(t, notFound, cause)
}

func TestErrorMessageIncludesOperationAndKey(t *testing.T) {
	err := NewError("read", "bucket", "source/a.wav", KindNotFound, errors.New("boom"))
	assert.Contains(t, err.Error(), "read")
	assert.Contains(t, err.Error(), "bucket/source/a.wav")
}
