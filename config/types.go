package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/ByLCY/designkit/aigen"
)

// Layout element sources.
const (
	SourceAuto     = "auto"
	SourceTemplate = "template"
	SourceAI       = "ai"
)

// DefaultFileName 是工作目录中查找的配置文件名。
const DefaultFileName = "designkit.yaml"

// EnvPrefix 是环境变量前缀，例如 DESIGNKIT_API_MODEL。
const EnvPrefix = "DESIGNKIT_"

// Config 是合并默认值、配置文件、环境变量与命令行参数后的结果。
type Config struct {
	API        APIConfig        `koanf:"api"`
	Credential CredentialConfig `koanf:"credential"`
	Output     OutputConfig     `koanf:"output"`
	Layout     LayoutConfig     `koanf:"layout"`
	Log        LogConfig        `koanf:"log"`
	Theme      ThemeConfig      `koanf:"theme"`

	// FileUsed 记录实际加载的配置文件，未加载时为空。
	FileUsed string `koanf:"-"`
}

type APIConfig struct {
	Endpoint    string        `koanf:"endpoint" validate:"required,url"`
	Model       string        `koanf:"model" validate:"required"`
	Temperature float64       `koanf:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int           `koanf:"max_tokens" validate:"gt=0"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	Referer     string        `koanf:"referer"`
	Title       string        `koanf:"title"`
}

type CredentialConfig struct {
	Backend string `koanf:"backend" validate:"oneof=file keychain"`
	Path    string `koanf:"path" validate:"required_if=Backend file"`
}

type OutputConfig struct {
	Dir    string `koanf:"dir" validate:"required"`
	Format string `koanf:"format" validate:"oneof=pdf svg"`
	// Fonts 用字体文件替换内置字体，键为 sans-regular、sans-bold 或 sans-oblique。
	Fonts map[string]string `koanf:"fonts" validate:"dive,keys,oneof=sans-regular sans-bold sans-oblique,endkeys,required"`
}

type LayoutConfig struct {
	Source string `koanf:"source" validate:"oneof=auto template ai"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `koanf:"human"`
}

type ThemeConfig struct {
	Initial string `koanf:"initial" validate:"oneof=light dark"`
	File    string `koanf:"file"`
}

// AIGen 转换为生成客户端配置。
func (c *Config) AIGen() aigen.Config {
	return aigen.Config{
		Endpoint:    c.API.Endpoint,
		Model:       c.API.Model,
		Temperature: c.API.Temperature,
		MaxTokens:   c.API.MaxTokens,
		Timeout:     c.API.Timeout,
		Referer:     c.API.Referer,
		Title:       c.API.Title,
	}
}

// defaults 返回最低优先级的配置。
func defaults() map[string]any {
	return map[string]any{
		"api.endpoint":       aigen.DefaultEndpoint,
		"api.model":          aigen.DefaultModel,
		"api.temperature":    aigen.DefaultTemperature,
		"api.max_tokens":     aigen.DefaultMaxTokens,
		"api.timeout":        aigen.DefaultTimeout.String(),
		"api.referer":        "https://github.com/ByLCY/designkit",
		"api.title":          "designkit",
		"credential.backend": "file",
		"credential.path":    defaultCredentialPath(),
		"output.dir":         "output",
		"output.format":      "pdf",
		"layout.source":      SourceAuto,
		"log.level":          "info",
		"log.human":          true,
		"theme.initial":      "light",
		"theme.file":         "",
	}
}

func defaultCredentialPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".designkit", "credentials.yaml")
	}
	return filepath.Join(dir, "designkit", "credentials.yaml")
}
