package lock

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryLocker serializes writes per room inside one process. It is used when
// Redis is not configured and in tests.
type MemoryLocker struct {
	mu    sync.Mutex
	rooms map[uuid.UUID]chan struct{}
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{rooms: make(map[uuid.UUID]chan struct{})}
}

func (l *MemoryLocker) slot(roomID uuid.UUID) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.rooms[roomID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.rooms[roomID] = ch
	}
	return ch
}

func (l *MemoryLocker) LockRoom(ctx context.Context, roomID uuid.UUID) (func(), error) {
	ch := l.slot(roomID)

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() { once.Do(func() { <-ch }) }, nil
}
