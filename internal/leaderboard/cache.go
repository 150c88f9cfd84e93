package leaderboard

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/giftroll/internal/domain"
)

// CacheSchemaVersion invalidates cached boards when the entry shape changes
const CacheSchemaVersion = "1"

const (
	cacheKeyTop = "top"
	cacheSize   = 4
)

type cachedBoard struct {
	Version  string
	Entries  []domain.LeaderboardEntry
	CachedAt time.Time
}

// boardCache holds rendered boards with time-based expiration
type boardCache struct {
	lru *expirable.LRU[string, *cachedBoard]
}

func newBoardCache(ttl time.Duration) *boardCache {
	return &boardCache{
		lru: expirable.NewLRU[string, *cachedBoard](cacheSize, nil, ttl),
	}
}

func (c *boardCache) Get(key string) ([]domain.LeaderboardEntry, bool) {
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Entries, true
}

func (c *boardCache) Set(key string, entries []domain.LeaderboardEntry) {
	c.lru.Add(key, &cachedBoard{
		Version:  CacheSchemaVersion,
		Entries:  entries,
		CachedAt: time.Now(),
	})
}

func (c *boardCache) Clear() {
	c.lru.Purge()
}
