package themebridge

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ByLCY/designkit/logger"
)

// Known theme values pushed by the host.
const (
	Light = "light"
	Dark  = "dark"
)

// Listener 接收一个主题值；更新不排队，回调应尽快返回。
type Listener func(theme string)

// Bridge 把宿主的主题变化推送给订阅者。
type Bridge struct {
	log *logger.Logger

	mu      sync.Mutex
	current string
	nextID  int
	subs    map[int]Listener
}

// New creates a bridge seeded with the initial theme.
func New(initial string, log *logger.Logger) *Bridge {
	b := &Bridge{log: log, subs: map[int]Listener{}}
	b.current = normalize(initial)
	if b.current == "" {
		b.current = Light
	}
	return b
}

// Current 返回最近一次推送的主题。
func (b *Bridge) Current() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Subscribe 注册回调并返回取消函数。
func (b *Bridge) Subscribe(fn Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
}

// Publish 更新当前主题并按订阅顺序通知；空值被忽略。
func (b *Bridge) Publish(theme string) {
	theme = normalize(theme)
	if theme == "" {
		return
	}
	b.mu.Lock()
	b.current = theme
	ids := make([]int, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	listeners := make([]Listener, 0, len(ids))
	for _, id := range ids {
		listeners = append(listeners, b.subs[id])
	}
	b.mu.Unlock()

	b.log.WithFields(map[string]any{"theme": theme}).Debug("theme changed")
	for _, fn := range listeners {
		fn(theme)
	}
}

// Watch 监听 path 文件，内容变化时发布其中的主题值，直到 ctx 结束。
// 文件已存在时先发布一次当前内容。
func (b *Bridge) Watch(ctx context.Context, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// fsnotify 监听目录以便捕获编辑器的原子替换
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}
	b.publishFile(absPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if name, _ := filepath.Abs(event.Name); name == absPath {
				b.publishFile(absPath)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			b.log.Error(err, "theme watcher error")
		}
	}
}

func (b *Bridge) publishFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			b.log.Error(err, "read theme file")
		}
		return
	}
	b.Publish(string(content))
}

func normalize(theme string) string {
	return strings.ToLower(strings.TrimSpace(theme))
}
