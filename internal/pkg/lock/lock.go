// Package lock provides per-user locking for score read-modify-write cycles.
// Discord events are dispatched on separate goroutines, so two interactions
// from the same user can otherwise race on the score store.
package lock

import "sync"

// userMutex wraps a mutex stored per user ID.
type userMutex struct {
	mu sync.Mutex
}

// UserLock provides per-user mutual exclusion keyed by Discord user ID.
// Entries are never evicted; the map grows with the number of distinct
// users, which is bounded by guild membership.
type UserLock struct {
	locks sync.Map // map[string]*userMutex
}

// NewUserLock creates a new UserLock instance.
func NewUserLock() *UserLock {
	return &UserLock{}
}

func (ul *UserLock) getLock(userID string) *userMutex {
	if v, ok := ul.locks.Load(userID); ok {
		return v.(*userMutex)
	}
	actual, _ := ul.locks.LoadOrStore(userID, &userMutex{})
	return actual.(*userMutex)
}

// Lock acquires the lock for a user.
func (ul *UserLock) Lock(userID string) {
	ul.getLock(userID).mu.Lock()
}

// Unlock releases the lock for a user.
func (ul *UserLock) Unlock(userID string) {
	if v, ok := ul.locks.Load(userID); ok {
		v.(*userMutex).mu.Unlock()
	}
}

// TryLock attempts to acquire the lock without blocking.
func (ul *UserLock) TryLock(userID string) bool {
	return ul.getLock(userID).mu.TryLock()
}

// WithLock executes fn while holding the user's lock.
func (ul *UserLock) WithLock(userID string, fn func() error) error {
	ul.Lock(userID)
	defer ul.Unlock(userID)
	return fn()
}
