package cli

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/ByLCY/designkit/config"
	"github.com/ByLCY/designkit/layout"
)

type intentFlags struct {
	designType  string
	style       string
	scheme      string
	description string
	width       float64
	height      float64
}

func (f *intentFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.designType, "type", "t", "", "设计类型：landing-page、dashboard 或 mobile-app")
	fs.StringVarP(&f.style, "style", "s", string(layout.StyleMinimal), "风格：minimal、modern 或 classic")
	fs.StringVar(&f.scheme, "scheme", string(layout.SchemeLight), "配色：light、dark 或 colorful")
	fs.StringVarP(&f.description, "description", "d", "", "附加描述")
	fs.Float64Var(&f.width, "width", 0, "画板宽度（默认按设计类型）")
	fs.Float64Var(&f.height, "height", 0, "画板高度（默认按设计类型）")
}

func (f *intentFlags) intent() (layout.Intent, error) {
	intent := withIntentDefaults(layout.Intent{
		Type:        layout.DesignType(strings.TrimSpace(f.designType)),
		Style:       layout.Style(strings.TrimSpace(f.style)),
		ColorScheme: layout.ColorScheme(strings.TrimSpace(f.scheme)),
		Description: f.description,
	})
	if err := config.ValidateIntent(intent); err != nil {
		return layout.Intent{}, err
	}
	return intent, nil
}

func withIntentDefaults(intent layout.Intent) layout.Intent {
	if intent.Style == "" {
		intent.Style = layout.StyleMinimal
	}
	if intent.ColorScheme == "" {
		intent.ColorScheme = layout.SchemeLight
	}
	return intent
}

type outputFlags struct {
	out      string
	debug    string
	data     string
	dataFile string
	table    bool
}

func (f *outputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.out, "out", "o", "", "输出文件路径（默认 <out-dir>/<type>.<format>）")
	fs.StringVar(&f.debug, "debug", "", "合成结果调试 JSON 输出路径")
	fs.StringVar(&f.data, "data", "", "绑定到文本的 JSON 数据")
	fs.StringVar(&f.dataFile, "data-file", "", "绑定数据文件（JSON 或 YAML）")
	fs.BoolVar(&f.table, "table", false, "以表格打印元素列表")
}
