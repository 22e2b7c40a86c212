package ratings

import (
	"context"
	"sync"
)

// keyQueue serializes work per key. Waiters are admitted in the order they
// called acquire.
type keyQueue struct {
	mu      sync.Mutex
	waiters map[string][]chan struct{}
}

func newKeyQueue() *keyQueue {
	return &keyQueue{waiters: make(map[string][]chan struct{})}
}

// acquire blocks until key is free or ctx is done. The returned release
// must be called exactly once after a successful acquire.
func (q *keyQueue) acquire(ctx context.Context, key string) (release func(), err error) {
	q.mu.Lock()
	turn := make(chan struct{})
	queue := q.waiters[key]
	q.waiters[key] = append(queue, turn)
	if len(queue) == 0 {
		close(turn)
	}
	q.mu.Unlock()

	select {
	case <-turn:
		return func() { q.release(key) }, nil
	case <-ctx.Done():
		q.abandon(key, turn)
		return nil, ctx.Err()
	}
}

// release hands the key to the next waiter.
func (q *keyQueue) release(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	queue := q.waiters[key][1:]
	if len(queue) == 0 {
		delete(q.waiters, key)
		return
	}
	q.waiters[key] = queue
	close(queue[0])
}

// abandon removes a canceled waiter. If the turn was granted in the
// meantime the key is passed on.
func (q *keyQueue) abandon(key string, turn chan struct{}) {
	q.mu.Lock()
	queue := q.waiters[key]
	for i, ch := range queue {
		if ch != turn {
			continue
		}
		if i == 0 {
			q.mu.Unlock()
			q.release(key)
			return
		}
		q.waiters[key] = append(queue[:i:i], queue[i+1:]...)
		break
	}
	q.mu.Unlock()
}

// pending returns the number of holders and waiters for key.
func (q *keyQueue) pending(key string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.waiters[key])
}
