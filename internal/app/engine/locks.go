package engine

import "sync"

// keyedLock is an all-or-nothing lock table over order ids. A batch either
// acquires every id it needs or none of them, so an out-of-band cancel can
// never interleave with a matching pass that holds the same order.
type keyedLock struct {
	mu   sync.Mutex
	held map[string]bool
}

func newKeyedLock() *keyedLock {
	return &keyedLock{
		held: make(map[string]bool),
	}
}

// TryLockAll acquires every key or reports false without holding any.
func (l *keyedLock) TryLockAll(keys []string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, key := range keys {
		if l.held[key] {
			return false
		}
	}
	for _, key := range keys {
		l.held[key] = true
	}
	return true
}

// Unlock releases the given keys. Releasing an unheld key is a no-op, so
// the deferred release after a failed TryLockAll stays safe.
func (l *keyedLock) Unlock(keys []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, key := range keys {
		delete(l.held, key)
	}
}
