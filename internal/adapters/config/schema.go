package config

// File represents the structure of the markcheck.yaml configuration file.
type File struct {
	CacheDir string     `yaml:"cache_dir"`
	Timeout  string     `yaml:"timeout"`
	Proxy    *ProxyDTO  `yaml:"proxy"`
	Markup   *MarkupDTO `yaml:"markup"`
	CSS      *CSSDTO    `yaml:"css"`
}

// ProxyDTO represents the proxy section of the configuration.
type ProxyDTO struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// MarkupDTO represents the markup validator section of the configuration.
type MarkupDTO struct {
	Endpoint string `yaml:"endpoint"`
}

// CSSDTO represents the CSS validator section of the configuration.
type CSSDTO struct {
	Endpoint   string `yaml:"endpoint"`
	Warning    string `yaml:"warning"`
	Profile    string `yaml:"profile"`
	UserMedium string `yaml:"usermedium"`
}
