package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_IsOK(t *testing.T) {
	assert.True(t, OK("done").IsOK())
	assert.True(t, OKWithID("done", 7).IsOK())
	assert.False(t, NotFound("missing").IsOK())
	assert.False(t, AlreadyExists("dup").IsOK())
	assert.False(t, PermissionDenied("no").IsOK())
	assert.False(t, InvalidInput("bad").IsOK())
	assert.False(t, NotLoggedIn("login").IsOK())
}

func TestResult_IDDefaultsToMinusOne(t *testing.T) {
	assert.Equal(t, int64(-1), OK("done").ID)
	assert.Equal(t, int64(-1), NotFound("missing").ID)
	assert.Equal(t, int64(42), OKWithID("done", 42).ID)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "OK", StatusOK.String())
	assert.Equal(t, "NOT_FOUND", StatusNotFound.String())
	assert.Equal(t, "ALREADY_EXISTS", StatusAlreadyExists.String())
	assert.Equal(t, "PERMISSION_DENIED", StatusPermissionDenied.String())
	assert.Equal(t, "INVALID_INPUT", StatusInvalidInput.String())
	assert.Equal(t, "NOT_LOGGED_IN", StatusNotLoggedIn.String())
}
