package config

// DefaultExcludes are glob patterns never copied from the assets directory.
var DefaultExcludes = []string{
	".git/**",
	"*.psd",
	"*.sketch",
	"node_modules/**",
	".DS_Store",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:      "Portfolio",
		DataSource: "data.json",
		OutputDir:  "public",
		Assets: Assets{
			Include: []string{"**"},
			Exclude: DefaultExcludes,
		},
		Port: 8080,
	}
}
