package config

// Owner holds the author-controlled contact details rendered into the page
// shell. These end up in the sidebar contact block verbatim, and the render
// pipeline mirrors them into the header.
type Owner struct {
	Name      string `yaml:"name" koanf:"name"`
	Tagline   string `yaml:"tagline" koanf:"tagline"`
	Location  string `yaml:"location" koanf:"location"`
	Email     string `yaml:"email" koanf:"email"`
	GitHub    string `yaml:"github" koanf:"github"`
	LinkedIn  string `yaml:"linkedin" koanf:"linkedin"`
	ResumePDF string `yaml:"resume_pdf" koanf:"resume_pdf"`
}

// Assets configures optional static files copied into the output directory.
type Assets struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include" koanf:"include"`
	Exclude []string `yaml:"exclude" koanf:"exclude"`
}

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Title      string `yaml:"title" koanf:"title"`
	Owner      Owner  `yaml:"owner" koanf:"owner"`
	DataSource string `yaml:"data_source" koanf:"data_source"`
	OutputDir  string `yaml:"output_dir" koanf:"output_dir"`
	Assets     Assets `yaml:"assets" koanf:"assets"`
	Port       int    `yaml:"port" koanf:"port"`
}
