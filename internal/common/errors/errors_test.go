package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	err := New(ErrCodeConstraintViolation, "file too large")
	assert.Equal(t, ErrCodeConstraintViolation, CodeOf(err))

	wrapped := fmt.Errorf("handling request: %w", err)
	assert.Equal(t, ErrCodeConstraintViolation, CodeOf(wrapped))

	assert.Equal(t, ErrCodeInternal, CodeOf(fmt.Errorf("plain")))
}

func TestLocalErrorsAreNotRetriable(t *testing.T) {
	for _, code := range []ErrorCode{ErrCodeMalformedInput, ErrCodeConstraintViolation, ErrCodeInvalidTransition} {
		err := New(code, "x")
		assert.True(t, err.IsLocal(), "%s", code)
		assert.False(t, err.IsRetriable(), "%s", code)
	}

	for _, code := range []ErrorCode{ErrCodeAuthorityRejected, ErrCodeAuthorityUnreachable, ErrCodeStorageFailure} {
		err := New(code, "x")
		assert.False(t, err.IsLocal(), "%s", code)
		assert.True(t, err.IsRetriable(), "%s", code)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := Wrap(ErrCodeAuthorityUnreachable, "authority unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "AUTHORITY_UNREACHABLE")
	assert.Contains(t, err.Error(), "connection refused")
}
