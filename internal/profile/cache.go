package profile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/skirmish/internal/model"
)

// Cache is a read-through, write-through proxy in front of a Repository.
//
// After a successful UpdateHighScore the cached score equals the stored
// one. The store is written first; the cached copy changes only after the
// write succeeds. A failed write evicts the entry so the next read goes back
// to the store. Operations on the same name are serialized.
type Cache struct {
	store Repository
	log   *slog.Logger

	mu       sync.RWMutex
	profiles map[string]model.PlayerProfile

	locks nameLocks
}

var _ Repository = (*Cache)(nil)

// NewCache wraps store.
func NewCache(store Repository, log *slog.Logger) *Cache {
	if log == nil {
		log = slog.Default()
	}
	return &Cache{
		store:    store,
		log:      log,
		profiles: make(map[string]model.PlayerProfile),
		locks:    nameLocks{m: make(map[string]*nameLock)},
	}
}

// GetProfile returns the cached profile, reading it from the store (and
// creating it there) on a miss. The returned value is a copy.
func (c *Cache) GetProfile(ctx context.Context, name string) (model.PlayerProfile, error) {
	if err := CheckName(name); err != nil {
		return model.PlayerProfile{}, err
	}

	unlock := c.locks.lock(name)
	defer unlock()

	if p, ok := c.lookup(name); ok {
		c.log.Debug("profile cache hit", "player", name)
		return p, nil
	}

	c.log.Debug("profile cache miss", "player", name)
	p, err := c.store.GetProfile(ctx, name)
	if err != nil {
		return model.PlayerProfile{}, fmt.Errorf("loading profile %q: %w", name, err)
	}
	c.put(name, p)
	return p, nil
}

// UpdateHighScore writes score through to the store and the cache.
func (c *Cache) UpdateHighScore(ctx context.Context, name string, score int) error {
	if err := CheckName(name); err != nil {
		return err
	}
	if err := CheckScore(score); err != nil {
		return err
	}

	unlock := c.locks.lock(name)
	defer unlock()

	if _, ok := c.lookup(name); !ok {
		c.log.Debug("profile cache miss", "player", name)
		if err := c.store.UpdateHighScore(ctx, name, score); err != nil {
			return fmt.Errorf("updating score of %q: %w", name, err)
		}
		// Re-read so the cache holds exactly what the store holds.
		p, err := c.store.GetProfile(ctx, name)
		if err != nil {
			return fmt.Errorf("reloading profile %q: %w", name, err)
		}
		c.put(name, p)
		return nil
	}

	if err := c.store.UpdateHighScore(ctx, name, score); err != nil {
		c.Evict(name)
		c.log.Warn("score write failed, profile evicted from cache", "player", name, "error", err)
		return fmt.Errorf("updating score of %q: %w", name, err)
	}

	c.mu.Lock()
	p := c.profiles[name]
	p.Score = score
	c.profiles[name] = p
	c.mu.Unlock()

	c.log.Info("score updated", "player", name, "score", score)
	return nil
}

// Evict drops name from the cache; the store is untouched.
func (c *Cache) Evict(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.profiles, name)
}

// Cached reports whether name is currently cached.
func (c *Cache) Cached(name string) bool {
	_, ok := c.lookup(name)
	return ok
}

// Len returns the number of cached profiles.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.profiles)
}

func (c *Cache) lookup(name string) (model.PlayerProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.profiles[name]
	return p, ok
}

func (c *Cache) put(name string, p model.PlayerProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles[name] = p
}

// nameLocks hands out one mutex per player name. Entries are reference
// counted and removed once nobody holds or waits on them.
type nameLocks struct {
	mu sync.Mutex
	m  map[string]*nameLock
}

type nameLock struct {
	mu   sync.Mutex
	refs int
}

func (l *nameLocks) lock(name string) (unlock func()) {
	l.mu.Lock()
	nl, ok := l.m[name]
	if !ok {
		nl = &nameLock{}
		l.m[name] = nl
	}
	nl.refs++
	l.mu.Unlock()

	nl.mu.Lock()
	return func() {
		nl.mu.Unlock()

		l.mu.Lock()
		nl.refs--
		if nl.refs == 0 {
			delete(l.m, name)
		}
		l.mu.Unlock()
	}
}
