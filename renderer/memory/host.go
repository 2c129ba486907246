package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/renderer"
)

// ErrInjected 是 FailOn 注入的失败。
var ErrInjected = errors.New("注入的宿主失败")

// Call 记录一次宿主调用。
type Call struct {
	Op        string                  `json:"op"`
	ID        string                  `json:"id"`
	Name      string                  `json:"name,omitempty"`
	Frame     layout.Frame            `json:"frame,omitzero"`
	Rectangle *renderer.RectangleSpec `json:"rectangle,omitempty"`
	Text      *renderer.TextSpec      `json:"text,omitempty"`
}

// Notification 记录一次通知。
type Notification struct {
	Level   renderer.Level `json:"level"`
	Message string         `json:"message"`
}

// Host 在内存中记录所有调用，用于测试与离线预览。
type Host struct {
	// FailOn 为正数时，第 FailOn 次图形创建调用（从 1 计数）返回 ErrInjected；零值表示不注入。
	FailOn int

	mu            sync.Mutex
	calls         []Call
	notifications []Notification
	shapes        int
}

// NewHost 创建不注入失败的 Host。零值 Host 同样可用。
func NewHost() *Host {
	return &Host{}
}

var _ renderer.Host = (*Host)(nil)

func (h *Host) CreatePage(ctx context.Context, name string) (renderer.PageHandle, error) {
	if err := ctx.Err(); err != nil {
		return renderer.PageHandle{}, err
	}
	page := renderer.PageHandle{ID: uuid.NewString(), Name: name}
	h.record(Call{Op: "page", ID: page.ID, Name: name})
	return page, nil
}

func (h *Host) CreateFrame(ctx context.Context, name string, width, height float64) (layout.Frame, error) {
	if err := ctx.Err(); err != nil {
		return layout.Frame{}, err
	}
	if width <= 0 || height <= 0 {
		return layout.Frame{}, fmt.Errorf("frame 尺寸无效: %gx%g", width, height)
	}
	frame := layout.Frame{ID: uuid.NewString(), Width: width, Height: height}
	h.record(Call{Op: "frame", ID: frame.ID, Name: name, Frame: frame})
	return frame, nil
}

func (h *Host) CreateRectangle(ctx context.Context, spec renderer.RectangleSpec) (renderer.ShapeHandle, error) {
	if err := h.nextShape(ctx); err != nil {
		return renderer.ShapeHandle{}, err
	}
	id := uuid.NewString()
	h.record(Call{Op: "rectangle", ID: id, Rectangle: &spec})
	return renderer.ShapeHandle{ID: id}, nil
}

func (h *Host) CreateText(ctx context.Context, spec renderer.TextSpec) (renderer.ShapeHandle, error) {
	if err := h.nextShape(ctx); err != nil {
		return renderer.ShapeHandle{}, err
	}
	id := uuid.NewString()
	h.record(Call{Op: "text", ID: id, Text: &spec})
	return renderer.ShapeHandle{ID: id}, nil
}

func (h *Host) Notify(level renderer.Level, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notifications = append(h.notifications, Notification{Level: level, Message: message})
}

// Calls 返回按调用顺序记录的副本。
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// Shapes 只返回图形创建调用。
func (h *Host) Shapes() []Call {
	var shapes []Call
	for _, c := range h.Calls() {
		if c.Op == "rectangle" || c.Op == "text" {
			shapes = append(shapes, c)
		}
	}
	return shapes
}

// Notifications 返回收到的通知副本。
func (h *Host) Notifications() []Notification {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Notification(nil), h.notifications...)
}

func (h *Host) nextShape(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.shapes++
	if h.FailOn > 0 && h.shapes == h.FailOn {
		return ErrInjected
	}
	return nil
}

func (h *Host) record(c Call) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, c)
}
