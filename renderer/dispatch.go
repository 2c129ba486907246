package renderer

import (
	"context"
	"errors"
	"fmt"

	"github.com/ByLCY/designkit/layout"
)

// ErrNilHost 表示未提供宿主。
var ErrNilHost = errors.New("host 不能为空")

// DispatchError 记录分发中第一个失败的元素。失败之前已创建的图形不会回滚。
type DispatchError struct {
	Index int
	Kind  layout.Kind
	Err   error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("创建第 %d 个元素 (%s) 失败: %v", e.Index, e.Kind, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

// Dispatch 按序为每个元素调用一次宿主创建接口，上一个调用完成后才发起下一个。
// 任一调用失败即中止剩余元素；ctx 取消时在下一个调用之前停止。
func Dispatch(ctx context.Context, host Host, frame layout.Frame, elements []layout.Element) error {
	if host == nil {
		return ErrNilHost
	}
	for i, el := range elements {
		if err := ctx.Err(); err != nil {
			return &DispatchError{Index: i, Kind: el.Kind, Err: err}
		}
		var err error
		switch el.Kind {
		case layout.KindRectangle:
			_, err = host.CreateRectangle(ctx, RectangleFromElement(frame.ID, el))
		case layout.KindText:
			_, err = host.CreateText(ctx, TextFromElement(frame.ID, el))
		default:
			err = fmt.Errorf("未知的元素类型 %q", el.Kind)
		}
		if err != nil {
			return &DispatchError{Index: i, Kind: el.Kind, Err: err}
		}
	}
	return nil
}
