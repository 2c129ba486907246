package layout

// Options 配置模板中的文案；几何规则不受影响。
type Options struct {
	Copy Copy
}

// Copy 保存模板使用的固定文案。
type Copy struct {
	Logo           string    `json:"logo"`
	Headline       string    `json:"headline"`
	Subheadline    string    `json:"subheadline"`
	CallToAction   string    `json:"callToAction"`
	DashboardBrand string    `json:"dashboardBrand"`
	DashboardTitle string    `json:"dashboardTitle"`
	MobileTitle    string    `json:"mobileTitle"`
	NavLabels      [4]string `json:"navLabels"`
}

// DefaultOptions 返回内置文案。
func DefaultOptions() Options {
	return Options{Copy: Copy{
		Logo:           "Logo",
		Headline:       "Welcome to Our Platform",
		Subheadline:    "Design, build and ship beautiful products faster.",
		CallToAction:   "Get Started",
		DashboardBrand: "Dashboard",
		DashboardTitle: "Overview",
		MobileTitle:    "Home",
		NavLabels:      [4]string{"Home", "Search", "Activity", "Profile"},
	}}
}

// withDefaults 用内置文案补齐空字段。
func (o Options) withDefaults() Options {
	def := DefaultOptions().Copy
	c := o.Copy
	if c.Logo == "" {
		c.Logo = def.Logo
	}
	if c.Headline == "" {
		c.Headline = def.Headline
	}
	if c.Subheadline == "" {
		c.Subheadline = def.Subheadline
	}
	if c.CallToAction == "" {
		c.CallToAction = def.CallToAction
	}
	if c.DashboardBrand == "" {
		c.DashboardBrand = def.DashboardBrand
	}
	if c.DashboardTitle == "" {
		c.DashboardTitle = def.DashboardTitle
	}
	if c.MobileTitle == "" {
		c.MobileTitle = def.MobileTitle
	}
	for i := range c.NavLabels {
		if c.NavLabels[i] == "" {
			c.NavLabels[i] = def.NavLabels[i]
		}
	}
	return Options{Copy: c}
}
