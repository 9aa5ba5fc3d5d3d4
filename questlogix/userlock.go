package questlogix

import (
	"hash/fnv"
	"sync"
)

const userLockerShards = 64

// UserLocker serializes mutations to a single user's state while leaving
// operations on different users free to run in parallel. Progress reports,
// claims, and inventory operations are read-modify-write sequences over the
// same per-user storage documents, so every user-scoped mutation must hold
// this lock for the duration of the operation.
//
// Locks are sharded by a hash of the user ID rather than allocated per user,
// which bounds memory for arbitrarily many users. Two users hashing to the
// same shard serialize against each other, which is safe, just not optimal.
type UserLocker struct {
	shards [userLockerShards]sync.Mutex
}

// NewUserLocker creates an empty sharded user lock.
func NewUserLocker() *UserLocker {
	return &UserLocker{}
}

func (l *UserLocker) shard(userID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return &l.shards[h.Sum32()%userLockerShards]
}

// Lock acquires the lock shard for the given user.
func (l *UserLocker) Lock(userID string) {
	l.shard(userID).Lock()
}

// Unlock releases the lock shard for the given user.
func (l *UserLocker) Unlock(userID string) {
	l.shard(userID).Unlock()
}
