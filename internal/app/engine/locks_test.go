package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedLock_AllOrNothing(t *testing.T) {
	locks := newKeyedLock()

	assert.True(t, locks.TryLockAll([]string{"a", "b"}))

	// One overlapping key fails the whole acquisition and must not leave
	// "c" held behind.
	assert.False(t, locks.TryLockAll([]string{"c", "b"}))
	assert.True(t, locks.TryLockAll([]string{"c"}))

	locks.Unlock([]string{"a", "b", "c"})
	assert.True(t, locks.TryLockAll([]string{"a", "b", "c"}))
}

func TestKeyedLock_UnlockUnheldKey(t *testing.T) {
	locks := newKeyedLock()

	locks.Unlock([]string{"never-held"})
	assert.True(t, locks.TryLockAll([]string{"never-held"}))
}
