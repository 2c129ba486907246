package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ByLCY/designkit/adapter"
	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/renderer/memory"
	"github.com/ByLCY/designkit/studio"
)

var (
	designTypes  = []string{string(layout.LandingPage), string(layout.Dashboard), string(layout.MobileApp)}
	styleNames   = []string{string(layout.StyleMinimal), string(layout.StyleModern), string(layout.StyleClassic)}
	schemeNames  = []string{string(layout.SchemeLight), string(layout.SchemeDark), string(layout.SchemeColorful)}
	intentParams = []mcp.ToolOption{
		mcp.WithString("type", mcp.Description("Design type"), mcp.Enum(designTypes...), mcp.Required()),
		mcp.WithString("style", mcp.Description("Visual style"), mcp.Enum(styleNames...), mcp.DefaultString(string(layout.StyleMinimal))),
		mcp.WithString("colorScheme", mcp.Description("Color scheme"), mcp.Enum(schemeNames...), mcp.DefaultString(string(layout.SchemeLight))),
		mcp.WithNumber("width", mcp.Description("Frame width in px (optional, defaults by type)")),
		mcp.WithNumber("height", mcp.Description("Frame height in px (optional, defaults by type)")),
	}
)

func (s *Server) registerResolverTools() {
	s.mcp.AddTool(mcp.NewTool("resolve_palette",
		mcp.WithDescription("Return the four-color palette (primary, background, text, accent) for a color scheme. Unknown schemes fall back to light."),
		mcp.WithString("colorScheme", mcp.Description("light, dark or colorful"), mcp.Required()),
	), s.handleResolvePalette)

	s.mcp.AddTool(mcp.NewTool("resolve_style",
		mcp.WithDescription("Return the spacing profile (padding, gap, borderRadius, shadowBlur) for a style. Unknown styles fall back to minimal."),
		mcp.WithString("style", mcp.Description("minimal, modern or classic"), mcp.Required()),
	), s.handleResolveStyle)
}

func (s *Server) registerLayoutTools() {
	s.mcp.AddTool(mcp.NewTool("synthesize_layout",
		append([]mcp.ToolOption{
			mcp.WithDescription("Synthesize the template element list for a design intent. Elements are in paint order with frame-relative coordinates."),
		}, intentParams...)...,
	), s.handleSynthesizeLayout)

	s.mcp.AddTool(mcp.NewTool("adapt_elements",
		append([]mcp.ToolOption{
			mcp.WithDescription("Normalize abstract elements (container, text, button) with loosely typed properties into positioned rectangles and text."),
			mcp.WithString("elements", mcp.Description("JSON array of abstract elements [{type, properties: {x?, y?, width?, height?, fill?, content?, fontSize?, ...}}, ...]"), mcp.Required()),
		}, intentParams...)...,
	), s.handleAdaptElements)

	s.mcp.AddTool(mcp.NewTool("render_design",
		append([]mcp.ToolOption{
			mcp.WithDescription("Run the full offline workflow against an in-memory host and return the recorded host calls (page, frame, shapes, notifications)."),
			mcp.WithString("elements", mcp.Description("Optional JSON array of abstract elements; the template is used when empty")),
		}, intentParams...)...,
	), s.handleRenderDesign)
}

func (s *Server) handleResolvePalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scheme := req.GetString("colorScheme", "")
	return jsonResult(layout.ResolvePalette(layout.ColorScheme(scheme)))
}

func (s *Server) handleResolveStyle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	style := req.GetString("style", "")
	return jsonResult(layout.ResolveStyle(layout.Style(style)))
}

func (s *Server) handleSynthesizeLayout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	intent, frame := intentFrom(req)
	res := layout.Compose(frame, intent, layout.Options{})
	s.log.WithFields(map[string]any{"type": string(intent.Type), "elements": len(res.Elements)}).Debug("synthesize_layout")
	return jsonResult(res)
}

func (s *Server) handleAdaptElements(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	abstract, err := parseElements(req.GetString("elements", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	intent, frame := intentFrom(req)
	palette := layout.ResolvePalette(intent.ColorScheme)
	profile := layout.ResolveStyle(intent.Style)
	return jsonResult(&layout.Result{
		Intent:   intent,
		Frame:    frame,
		Palette:  palette,
		Profile:  profile,
		Elements: adapter.Adapt(abstract, profile, frame, palette),
	})
}

// renderReport 汇总 render_design 记录到的宿主调用。
type renderReport struct {
	Source        string                `json:"source"`
	Calls         []memory.Call         `json:"calls"`
	Notifications []memory.Notification `json:"notifications"`
}

func (s *Server) handleRenderDesign(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var abstract []adapter.AbstractElement
	if raw := req.GetString("elements", ""); raw != "" {
		var err error
		if abstract, err = parseElements(raw); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	intent, frame := intentFrom(req)
	host := memory.NewHost()
	svc := &studio.Service{Host: host, Log: s.log}
	out, err := svc.Render(ctx, studio.Request{
		Intent:   intent,
		Width:    frame.Width,
		Height:   frame.Height,
		Elements: abstract,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(renderReport{Source: out.Source, Calls: host.Calls(), Notifications: host.Notifications()})
}

func intentFrom(req mcp.CallToolRequest) (layout.Intent, layout.Frame) {
	intent := layout.Intent{
		Type:        layout.DesignType(req.GetString("type", "")),
		Style:       layout.Style(req.GetString("style", string(layout.StyleMinimal))),
		ColorScheme: layout.ColorScheme(req.GetString("colorScheme", string(layout.SchemeLight))),
	}
	w, h := layout.FrameSize(intent.Type)
	if v := req.GetFloat("width", 0); v > 0 {
		w = v
	}
	if v := req.GetFloat("height", 0); v > 0 {
		h = v
	}
	return intent, layout.Frame{ID: "frame", Width: w, Height: h}
}

func parseElements(raw string) ([]adapter.AbstractElement, error) {
	var elements []adapter.AbstractElement
	if err := json.Unmarshal([]byte(raw), &elements); err != nil {
		return nil, fmt.Errorf("elements must be a JSON array of {type, properties}: %w", err)
	}
	return elements, nil
}
