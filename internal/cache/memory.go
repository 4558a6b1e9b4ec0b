package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

// Memory is an in-process Cache backed by ttlcache.
type Memory struct {
	items *ttlcache.Cache[string, []byte]
}

var _ Cache = (*Memory)(nil)

// NewMemory builds an in-memory cache. Entries expire after ttl;
// a non-positive ttl keeps them until overwritten or deleted.
func NewMemory(ttl time.Duration) *Memory {
	var opts []ttlcache.Option[string, []byte]
	if ttl > 0 {
		opts = append(opts, ttlcache.WithTTL[string, []byte](ttl))
	}

	items := ttlcache.New[string, []byte](opts...)
	go items.Start()

	return &Memory{items: items}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	item := m.items.Get(key)
	if item == nil {
		return nil, false
	}
	return item.Value(), true
}

func (m *Memory) Set(_ context.Context, key string, val []byte) {
	m.items.Set(key, val, ttlcache.DefaultTTL)
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.items.Delete(key)
}

// Stop halts the background expiration loop.
func (m *Memory) Stop() {
	m.items.Stop()
}
