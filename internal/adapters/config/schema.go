package config

// Brandfile represents the structure of the brandlay.yaml configuration file.
// Omitted fields keep their defaults.
type Brandfile struct {
	Root            string   `yaml:"root"`
	SrcDir          string   `yaml:"srcDir"`
	ClientEntry     string   `yaml:"clientEntry"`
	ServerEntry     string   `yaml:"serverEntry"`
	FrontierConfig  string   `yaml:"frontierConfig"`
	StyleExtensions []string `yaml:"styleExtensions"`
	SkipDirs        []string `yaml:"skipDirs"`
	Mode            string   `yaml:"mode"`
}

// Frontierfile represents the structure of frontier.config.yaml.
type Frontierfile struct {
	Name        string   `yaml:"name"`
	Entrypoints []string `yaml:"entrypoints"`
}
