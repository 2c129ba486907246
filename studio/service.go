package studio

import (
	"context"
	"errors"
	"fmt"

	"github.com/ByLCY/designkit/adapter"
	"github.com/ByLCY/designkit/aigen"
	"github.com/ByLCY/designkit/binding"
	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/logger"
	"github.com/ByLCY/designkit/renderer"
)

// 该文件串联一次完整的生成流程：凭据检查、生成请求、创建页面与 Frame、合成元素、分发绘制。

// Element sources.
const (
	SourceAuto     = "auto"
	SourceTemplate = "template"
	SourceAI       = "ai"
)

const (
	frameName      = "Main Frame"
	successMessage = "Design generated successfully!"
)

// Generator 请求外部生成服务。*aigen.Client 实现该接口。
type Generator interface {
	Generate(ctx context.Context, apiKey string, intent layout.Intent, frame layout.Frame) (*aigen.Response, error)
}

// Credentials 提供当前缓存的 API key。*credential.Cache 实现该接口。
type Credentials interface {
	APIKey() string
}

// Request 描述一次生成。
type Request struct {
	Intent  layout.Intent
	Options layout.Options
	// Width/Height 为 0 时按设计类型取默认尺寸。
	Width, Height float64
	// Elements 非空时离线使用这些抽象元素，而不是模板。
	Elements []adapter.AbstractElement
	// Data 用于 ${path} 文本插值，可以为 nil。
	Data any
}

// Outcome 汇总一次生成的结果。
type Outcome struct {
	Page     renderer.PageHandle
	Frame    layout.Frame
	Palette  layout.Palette
	Profile  layout.StyleProfile
	Elements []layout.Element
	Source   string
	Response *aigen.Response
}

// Result 转换为调试 JSON 使用的合成结果。
func (o *Outcome) Result(intent layout.Intent) *layout.Result {
	return &layout.Result{
		Intent:   intent,
		Frame:    o.Frame,
		Palette:  o.Palette,
		Profile:  o.Profile,
		Elements: o.Elements,
	}
}

// Service 持有一次流程需要的全部依赖，自身无状态，可重复调用。
type Service struct {
	Host        renderer.Host
	Generator   Generator
	Credentials Credentials
	// Source 决定元素来源：auto、template 或 ai，空值等同于 auto。
	Source string
	Log    *logger.Logger
}

// Generate 执行 AI 生成流程。未设置 API key 时返回 aigen.ErrMissingCredential，不发起任何请求。
func (s *Service) Generate(ctx context.Context, req Request) (*Outcome, error) {
	if s.Host == nil {
		return nil, renderer.ErrNilHost
	}
	apiKey := ""
	if s.Credentials != nil {
		apiKey = s.Credentials.APIKey()
	}
	if apiKey == "" {
		// 由调用方切换到设置界面，不向宿主发送通知
		return nil, aigen.ErrMissingCredential
	}
	if s.Generator == nil {
		return nil, errors.New("未配置生成服务")
	}

	log := s.Log.WithFields(map[string]any{
		"type":   string(req.Intent.Type),
		"style":  string(req.Intent.Style),
		"scheme": string(req.Intent.ColorScheme),
	})

	width, height := frameSize(req)
	resp, err := s.Generator.Generate(ctx, apiKey, req.Intent, layout.Frame{Width: width, Height: height})
	if err != nil {
		s.Host.Notify(renderer.LevelError, err.Error())
		return nil, err
	}
	if colors := resp.Design.Style.Colors; len(colors) > 0 {
		// 配色始终来自解析器，生成服务的建议只记录。
		log.WithFields(map[string]any{"suggested_colors": colors}).Debug("ignoring suggested palette")
	}

	source := s.source()
	if source == SourceAuto {
		source = SourceTemplate
		if len(resp.Design.Elements) > 0 {
			source = SourceAI
		}
	}
	var abstract []adapter.AbstractElement
	if source == SourceAI {
		abstract = resp.Design.Elements
	}

	out, err := s.build(ctx, pageName("AI Generated", req.Intent), req, abstract, source)
	if err != nil {
		s.Host.Notify(renderer.LevelError, err.Error())
		return nil, err
	}
	out.Response = resp
	s.Host.Notify(renderer.LevelInfo, successMessage)
	log.WithFields(map[string]any{"source": source, "elements": len(out.Elements)}).Info("design generated")
	return out, nil
}

// Render 离线合成：不需要凭据，也不访问网络。Request.Elements 非空时走适配器，否则走模板。
func (s *Service) Render(ctx context.Context, req Request) (*Outcome, error) {
	if s.Host == nil {
		return nil, renderer.ErrNilHost
	}
	source := SourceTemplate
	if len(req.Elements) > 0 {
		source = SourceAI
	}
	out, err := s.build(ctx, pageName("Design", req.Intent), req, req.Elements, source)
	if err != nil {
		s.Host.Notify(renderer.LevelError, err.Error())
		return nil, err
	}
	s.Host.Notify(renderer.LevelInfo, successMessage)
	s.Log.WithFields(map[string]any{"source": source, "elements": len(out.Elements)}).Info("design rendered")
	return out, nil
}

func (s *Service) build(ctx context.Context, page string, req Request, abstract []adapter.AbstractElement, source string) (*Outcome, error) {
	handle, err := s.Host.CreatePage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("创建页面失败: %w", err)
	}
	width, height := frameSize(req)
	frame, err := s.Host.CreateFrame(ctx, frameName, width, height)
	if err != nil {
		return nil, fmt.Errorf("创建 Frame 失败: %w", err)
	}

	palette := layout.ResolvePalette(req.Intent.ColorScheme)
	profile := layout.ResolveStyle(req.Intent.Style)

	var elements []layout.Element
	if source == SourceAI {
		elements = adapter.Adapt(binding.Abstract(abstract, req.Data), profile, frame, palette)
	} else {
		elements = binding.Elements(layout.SynthesizeWithOptions(frame, req.Intent, palette, profile, req.Options), req.Data)
	}

	if err := renderer.Dispatch(ctx, s.Host, frame, elements); err != nil {
		return nil, err
	}
	return &Outcome{
		Page:     handle,
		Frame:    frame,
		Palette:  palette,
		Profile:  profile,
		Elements: elements,
		Source:   source,
	}, nil
}

func (s *Service) source() string {
	switch s.Source {
	case SourceTemplate, SourceAI:
		return s.Source
	default:
		return SourceAuto
	}
}

func frameSize(req Request) (float64, float64) {
	w, h := layout.FrameSize(req.Intent.Type)
	if req.Width > 0 {
		w = req.Width
	}
	if req.Height > 0 {
		h = req.Height
	}
	return w, h
}

func pageName(prefix string, intent layout.Intent) string {
	return fmt.Sprintf("%s %s", prefix, intent.Type)
}
