package config

// PlotConfig is the full configuration for a posterior comparison plot.
type PlotConfig struct {
	FormatVersion string         `yaml:"format_version,omitempty"`
	Results       []ResultConfig `yaml:"results"`

	// Parameters restricts the plot to a subset of parameter names; empty
	// means all parameters.
	Parameters []string     `yaml:"parameters,omitempty"`
	Figure     FigureConfig `yaml:"figure"`
}

// Kind implements the Config interface.
func (c *PlotConfig) Kind() ConfigKind { return ConfigKindPlot }

// ResultConfig references one result file (posterior samples plus weights)
// to include in the plot.
type ResultConfig struct {
	Label       string `yaml:"label"`
	FilePath    string `yaml:"file_path"`
	Color       string `yaml:"color,omitempty"`
	GroundTruth bool   `yaml:"ground_truth,omitempty"`
}

// Output formats for FigureConfig.Format.
const (
	FigureFormatPDF = "pdf"
	FigureFormatPNG = "png"
	FigureFormatSVG = "svg"
)

// FigureConfig holds figure styling: size in inches, resolution, output
// format, and font.
type FigureConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	DPI        int     `yaml:"dpi"`
	Format     string  `yaml:"format"`
	FontFamily string  `yaml:"font_family,omitempty"`
}

func (c *PlotConfig) applyDefaults() {
	if c.Figure.Width == 0 {
		c.Figure.Width = 6.0
	}
	if c.Figure.Height == 0 {
		c.Figure.Height = 6.0
	}
	if c.Figure.DPI == 0 {
		c.Figure.DPI = 300
	}
	if c.Figure.Format == "" {
		c.Figure.Format = FigureFormatPDF
	}
}
