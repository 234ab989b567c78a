package verify

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultMetaSample is the meta sample of the bundled sample set.
var DefaultMetaSample = SampleID{
	Owner: "github.com/ajroetker/go-lanes/internal/samples.MetaSamples",
	Name:  "DispatchDisabled",
}

// Config configures a verification run. It is read from hwyverify.yaml
// and overridden by command-line flags.
type Config struct {
	// ImagePackage is the main package built into both images.
	ImagePackage string `yaml:"image_package"`
	// ModuleDir is where go build runs.
	ModuleDir string `yaml:"module_dir"`
	// WorkDir receives the image binaries. Empty means a temporary
	// directory.
	WorkDir string `yaml:"work_dir"`
	// MetaSample is "<owner>.<name>" of the meta sample.
	MetaSample string `yaml:"meta_sample"`
	// Format is "text" or "yaml".
	Format string `yaml:"format"`
	// KeepImages keeps the image binaries after the run.
	KeepImages bool `yaml:"keep_images"`
	// BuildTags are added to both builds.
	BuildTags []string `yaml:"build_tags"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		ImagePackage: DefaultImagePackage,
		ModuleDir:    ".",
		MetaSample:   DefaultMetaSample.String(),
		Format:       FormatText,
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("verify: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("verify: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("verify: config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.ImagePackage == "" {
		return fmt.Errorf("image_package is empty")
	}
	if _, err := ParseSampleID(c.MetaSample); err != nil {
		return fmt.Errorf("meta_sample: %w", err)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q (want %s or %s)", c.Format, FormatText, FormatYAML)
	}
	for _, tag := range c.BuildTags {
		if tag == ScalarTag {
			return fmt.Errorf("build_tags must not contain %s; it selects the scalar image", ScalarTag)
		}
	}
	return nil
}

// Meta returns the parsed meta sample id.
func (c *Config) Meta() SampleID {
	id, _ := ParseSampleID(c.MetaSample)
	return id
}
