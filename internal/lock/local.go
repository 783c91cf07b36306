package lock

import (
	"context"
	"fmt"
	"sync"
)

type entry struct {
	ch   chan struct{}
	refs int
}

// Local блокировки внутри одного процесса
type Local struct {
	mtx     sync.Mutex
	entries map[string]*entry
}

func NewLocal() *Local {
	return &Local{entries: make(map[string]*entry)}
}

func (l *Local) Lock(ctx context.Context, key string) (func(), error) {
	l.mtx.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mtx.Unlock()

	select {
	case e.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-e.ch
				l.release(key, e)
			})
		}, nil
	case <-ctx.Done():
		l.release(key, e)
		return nil, fmt.Errorf("acquire lock %s: %w", key, ctx.Err())
	}
}

func (l *Local) release(key string, e *entry) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// size число ключей с ожидающими или держащими блокировку
func (l *Local) size() int {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return len(l.entries)
}
