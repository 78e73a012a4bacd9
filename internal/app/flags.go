package app

import "flag"

// Config represents the command-line parameters of the viewer.
type Config struct {
	Input    string
	Settings string
	Scale    int
	TPS      int
	Rate     int
	Rows     int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Input: "-", Scale: 4, TPS: 60, Rate: 10, Rows: 160, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "configuration token stream (- for stdin)")
	fs.StringVar(&c.Settings, "config", c.Settings, "settings YAML file (default ~/.lca/config.yaml)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.IntVar(&c.Rows, "rows", c.Rows, "visible generations")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "status panel width in pixels (0 hides it)")
}
