package credential

import (
	"fmt"
	"strings"
	"sync"
)

// Cache 是进程内共享的 API key 缓存。Init 从存储加载，Save 是唯一的写入入口。
type Cache struct {
	store Store

	mu     sync.RWMutex
	key    string
	loaded bool
}

// NewCache creates a cache over store. Call Init before reading.
func NewCache(store Store) *Cache {
	return &Cache{store: store}
}

// Init 从存储加载 API key。
func (c *Cache) Init() error {
	value, err := c.store.Get(APIKeyName)
	if err != nil {
		return fmt.Errorf("加载 API key 失败: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = strings.TrimSpace(string(value))
	c.loaded = true
	return nil
}

// Save 持久化新的 API key 并更新缓存；空值等同于 Clear。
func (c *Cache) Save(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return c.Clear()
	}
	if err := c.store.Set(APIKeyName, []byte(key)); err != nil {
		return fmt.Errorf("保存 API key 失败: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = key
	c.loaded = true
	return nil
}

// Clear 删除已保存的 API key。
func (c *Cache) Clear() error {
	if err := c.store.Delete(APIKeyName); err != nil {
		return fmt.Errorf("删除 API key 失败: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.key = ""
	c.loaded = true
	return nil
}

// APIKey 返回缓存中的 API key，未加载或未设置时为空。
func (c *Cache) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.key
}

// HasKey reports whether a non-empty key is cached.
func (c *Cache) HasKey() bool {
	return c.APIKey() != ""
}

// Loaded reports whether Init or Save has run.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Masked 返回用于展示的 key，仅保留末尾 4 位。
func (c *Cache) Masked() string {
	key := c.APIKey()
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", 8) + key[len(key)-4:]
}
