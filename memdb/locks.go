package memdb

import (
	"context"
	"time"
)

const (
	lockKeyPrefix = "LCK:"
	lockTTL       = 30 * time.Second // a crashed holder frees the poll after this long
	lockRetryWait = 50 * time.Millisecond
)

// PollLocker serializes voter ledger updates per poll through redis, so
// answers processed by concurrent handlers (or bot replicas) can not lose
// each other's writes.
type PollLocker struct{}

func NewPollLocker() *PollLocker {
	return &PollLocker{}
}

func pollIdToKey(pollId string) string {
	return lockKeyPrefix + pollId
}

func (l *PollLocker) LockPoll(ctx context.Context, pollId string) (func(), error) {
	key := pollIdToKey(pollId)

	for {
		result := redisClient.SetNX(ctx, key, 1, lockTTL)
		acquired, err := result.Result()
		if err != nil {
			return nil, err
		}
		if acquired {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryWait):
		}
	}

	release := func() {
		// not bound to the caller's ctx, the lock must go away even when
		// the handler's context is already cancelled
		redisClient.Del(context.Background(), key)
	}
	return release, nil
}
