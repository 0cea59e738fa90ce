package boxwhisker

import "image/color"

// Style of the elements of one layer. Colors are strings understood by
// String2Color.
type Style struct {
	Stroke    string  `yaml:"stroke" toml:"stroke"`
	Fill      string  `yaml:"fill" toml:"fill"`
	LineWidth float64 `yaml:"lineWidth" toml:"lineWidth"`
	LineType  string  `yaml:"lineType" toml:"lineType"`
}

func (s Style) StrokeColor() color.Color { return String2Color(s.Stroke) }
func (s Style) FillColor() color.Color   { return String2Color(s.Fill) }

// Theme maps layer names to styles.
type Theme struct {
	Styles   map[string]Style `yaml:"styles" toml:"styles"`
	Font     string           `yaml:"font" toml:"font"`
	FontSize float64          `yaml:"fontSize" toml:"fontSize"`
	Text     string           `yaml:"text" toml:"text"`
}

var DefaultTheme = Theme{
	Styles: map[string]Style{
		LayerCenter:       {Stroke: "black", LineWidth: 1, LineType: "dashed"},
		LayerBox:          {Stroke: "black", Fill: "#b0c4de", LineWidth: 1},
		LayerMedian:       {Stroke: "black", LineWidth: 2},
		LayerMean:         {Stroke: "black", Fill: "white", LineWidth: 1},
		LayerWhiskers:     {Stroke: "black", LineWidth: 1},
		LayerOutliers:     {Stroke: "#b22222", Fill: "none", LineWidth: 1},
		LayerDataPoints:   {Stroke: "steelblue", Fill: "steelblue", LineWidth: 0.5},
		LayerGoal:         {Stroke: "#228b22", LineWidth: 1.5, LineType: "dashed"},
		LayerBoxTicks:     {},
		LayerWhiskerTicks: {},
	},
	Font:     "Helvetica",
	FontSize: 10,
	Text:     "gray20",
}

// Style returns the style of layer, a thin black line if the theme has
// none.
func (t Theme) Style(layer string) Style {
	if s, ok := t.Styles[layer]; ok {
		return s
	}
	return Style{Stroke: "black", LineWidth: 1}
}
