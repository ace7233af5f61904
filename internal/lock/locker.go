// Package lock serializes operator work per account.
package lock

import (
	"context"
	"sort"
	"sync"
)

// Locker acquires every key or none. Keys are taken in sorted order so two
// callers locking the same pair cannot deadlock. release must be called
// exactly once.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (release func(), err error)
}

func normalizeKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

// LocalLocker locks keys within this process.
type LocalLocker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	slot chan struct{}
	refs int
}

var _ Locker = (*LocalLocker)(nil)

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{entries: make(map[string]*entry)}
}

func (l *LocalLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalizeKeys(keys)
	held := make([]string, 0, len(keys))

	releaseAll := func() {
		for i := len(held) - 1; i >= 0; i-- {
			l.release(held[i])
		}
	}

	for _, key := range keys {
		e := l.acquireEntry(key)
		select {
		case e.slot <- struct{}{}:
			held = append(held, key)
		case <-ctx.Done():
			l.dropEntry(key)
			releaseAll()
			return nil, ctx.Err()
		}
	}

	var once sync.Once
	return func() { once.Do(releaseAll) }, nil
}

func (l *LocalLocker) acquireEntry(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{slot: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *LocalLocker) dropEntry(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[key]
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

func (l *LocalLocker) release(key string) {
	l.mu.Lock()
	e := l.entries[key]
	l.mu.Unlock()

	<-e.slot
	l.dropEntry(key)
}
