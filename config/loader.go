package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys 把命令行参数名映射到配置键；未列出的参数不参与配置合并。
var flagKeys = map[string]string{
	"endpoint":           "api.endpoint",
	"model":              "api.model",
	"temperature":        "api.temperature",
	"max-tokens":         "api.max_tokens",
	"timeout":            "api.timeout",
	"credential-backend": "credential.backend",
	"credential-path":    "credential.path",
	"out-dir":            "output.dir",
	"format":             "output.format",
	"source":             "layout.source",
	"log-level":          "log.level",
	"log-human":          "log.human",
	"theme":              "theme.initial",
	"theme-file":         "theme.file",
}

// Load 按优先级合并配置：命令行参数 > 环境变量 > 配置文件 > 默认值。
// cfgFile 为空时在当前目录查找 designkit.yaml；flags 可以为 nil。
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. 默认值
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("加载默认配置失败: %w", err)
	}

	// 2. 配置文件
	fileUsed := findConfigFile(cfgFile)
	if cfgFile != "" && fileUsed == "" {
		return nil, fmt.Errorf("配置文件 %s 不存在", cfgFile)
	}
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("读取配置文件 %s 失败: %w", fileUsed, err)
		}
	}

	// 3. 环境变量：DESIGNKIT_API_MAX_TOKENS -> api.max_tokens
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("加载环境变量失败: %w", err)
	}

	// 4. 显式设置的命令行参数
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("加载命令行参数失败: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.FileUsed = fileUsed
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey 去掉前缀并把第一个下划线换成分隔符。
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		if _, err := os.Stat(explicit); err == nil {
			return explicit
		}
		return ""
	}
	for _, name := range []string{DefaultFileName, "designkit.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
