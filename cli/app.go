package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ByLCY/designkit/aigen"
	"github.com/ByLCY/designkit/config"
	"github.com/ByLCY/designkit/credential"
	"github.com/ByLCY/designkit/layout"
	"github.com/ByLCY/designkit/logger"
	"github.com/ByLCY/designkit/renderer"
	canvasrenderer "github.com/ByLCY/designkit/renderer/canvas"
	"github.com/ByLCY/designkit/studio"
)

// appContext bundles long-lived services created for one command.
type appContext struct {
	cfg  *config.Config
	log  *logger.Logger
	keys *credential.Cache
}

func newAppContext(cmd *cobra.Command, opts *rootOptions) (*appContext, error) {
	cfg, err := config.Load(opts.configFile, cmd.Flags())
	if err != nil {
		return nil, err
	}
	log, err := logger.New(logger.Options{
		Level:         cfg.Log.Level,
		HumanReadable: cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("创建日志失败: %w", err)
	}
	if cfg.FileUsed != "" {
		log.WithFields(map[string]any{"path": cfg.FileUsed}).Debug("config loaded")
	}

	store, err := credential.Open(cfg.Credential.Backend, cfg.Credential.Path)
	if err != nil {
		return nil, err
	}
	keys := credential.NewCache(store)
	if err := keys.Init(); err != nil {
		return nil, err
	}
	return &appContext{cfg: cfg, log: log, keys: keys}, nil
}

func (a *appContext) newHost(title string) (*canvasrenderer.Host, error) {
	fontRes := make(map[string]canvasrenderer.Resource, len(a.cfg.Output.Fonts))
	for name, path := range a.cfg.Output.Fonts {
		fontRes[name] = canvasrenderer.Resource{Path: path}
	}
	baseDir := ""
	if a.cfg.FileUsed != "" {
		// 相对字体路径以配置文件所在目录为基准
		baseDir = filepath.Dir(a.cfg.FileUsed)
	}
	return canvasrenderer.NewHostWithOptions(canvasrenderer.Options{
		Format:  canvasrenderer.Format(a.cfg.Output.Format),
		BaseDir: baseDir,
		Fonts:   fontRes,
		Title:   title,
		Creator: "designkit " + Version,
		Logger:  a.log,
	})
}

func (a *appContext) service(host renderer.Host) *studio.Service {
	return &studio.Service{
		Host:        host,
		Generator:   aigen.NewClient(a.cfg.AIGen(), nil, a.log),
		Credentials: a.keys,
		Source:      a.cfg.Layout.Source,
		Log:         a.log,
	}
}

// export 把宿主内容写入 path；path 为空时写到输出目录下的 <type>.<format>。
func (a *appContext) export(host renderer.Exporter, intent layout.Intent, path string) (string, error) {
	if path == "" {
		path = filepath.Join(a.cfg.Output.Dir, fmt.Sprintf("%s.%s", intent.Type, a.cfg.Output.Format))
	}
	data, err := host.Export()
	if err != nil {
		return "", fmt.Errorf("导出失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	return path, nil
}

// loadData 读取绑定数据：inline 为 JSON 字符串，path 为 JSON 或 YAML 文件。
func loadData(inline, path string) (any, error) {
	var raw []byte
	switch {
	case strings.TrimSpace(inline) != "":
		raw = []byte(inline)
	case path != "":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取数据文件失败: %w", err)
		}
		raw = b
	default:
		return nil, nil
	}
	// YAML 是 JSON 的超集，两种格式共用一个解码器
	var data any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("解析绑定数据失败: %w", err)
	}
	return data, nil
}
