package concurrency

import (
	"sync"
)

// LockManager hands out one reader/writer lock per agent id.
// Readers (form renders, trade lookups) share the lock; edits hold it exclusively.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the lock for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.RWMutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.RWMutex{})
	return lock.(*sync.RWMutex)
}

// Forget drops the lock for key. Used once the agent is gone.
func (lm *LockManager) Forget(key string) {
	lm.locks.Delete(key)
}
