package config

// Config represents the full seedtheme configuration document.
type Config struct {
	Seed     string  `yaml:"seed" validate:"required,seed_color"`
	Contrast float64 `yaml:"contrast,omitempty" validate:"gte=-1,lte=1"`
	Output   string  `yaml:"output,omitempty"`
	Serve    Serve   `yaml:"serve,omitempty"`
}

// Serve holds settings for the HTTP theme server.
type Serve struct {
	Listen string `yaml:"listen,omitempty" validate:"omitempty,hostname_port"`
}

// Defaults applied where the document leaves fields unset.
const (
	DefaultOutput = "theme.css"
	DefaultListen = "localhost:7913"
)

// ApplyDefaults fills unset fields in place.
func (c *Config) ApplyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Serve.Listen == "" {
		c.Serve.Listen = DefaultListen
	}
}
